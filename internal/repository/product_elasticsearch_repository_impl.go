package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/JhonMohamed/Ravvisant/internal/dto"
	pkgdto "github.com/JhonMohamed/Ravvisant/pkg/dto"
	"github.com/elastic/go-elasticsearch"
)

const productIndex = "products"

type ElasticSearchProductRepositoryImpl struct {
	elasticsearch *elasticsearch.Client
}

func CreateNewElasticSearchProductRepository(elasticsearch *elasticsearch.Client) ProductSearchRepository {
	return &ElasticSearchProductRepositoryImpl{elasticsearch: elasticsearch}
}

func (r *ElasticSearchProductRepositoryImpl) AddProduct(ctx context.Context, data dto.ProductResponse) (err error) {
	docBytes, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("error marshaling document: %w", err)
	}

	res, err := r.elasticsearch.Index(
		productIndex,
		bytes.NewReader(docBytes),
		r.elasticsearch.Index.WithDocumentID(data.ID),
		r.elasticsearch.Index.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("error indexing document: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error indexing document: %s", res.String())
	}

	return nil
}

func (r *ElasticSearchProductRepositoryImpl) SearchProducts(ctx context.Context, filter pkgdto.Filter) (data []dto.ProductResponse, count int, err error) {
	query := map[string]interface{}{
		"query": map[string]interface{}{
			"bool": map[string]interface{}{
				"must": []interface{}{},
			},
		},
	}

	boolQuery := query["query"].(map[string]interface{})["bool"].(map[string]interface{})

	if filter.Q != "" {
		boolQuery["must"] = append(boolQuery["must"].([]interface{}), map[string]interface{}{
			"match": map[string]interface{}{
				"name": filter.Q,
			},
		})
	}

	if filter.CategoryID != "" {
		boolQuery["filter"] = map[string]interface{}{
			"term": map[string]interface{}{
				"categoryId": filter.CategoryID,
			},
		}
	}

	if len(boolQuery["must"].([]interface{})) == 0 && boolQuery["filter"] == nil {
		query["query"] = map[string]interface{}{
			"match_all": map[string]interface{}{},
		}
	}

	if filter.Limit != 0 && filter.Page != 0 {
		query["from"] = (filter.Page - 1) * filter.Limit
		query["size"] = filter.Limit
	}

	queryBytes, err := json.Marshal(query)
	if err != nil {
		return nil, 0, fmt.Errorf("error encoding query: %w", err)
	}

	res, err := r.elasticsearch.Search(
		r.elasticsearch.Search.WithContext(ctx),
		r.elasticsearch.Search.WithIndex(productIndex),
		r.elasticsearch.Search.WithBody(bytes.NewReader(queryBytes)),
		r.elasticsearch.Search.WithTrackTotalHits(true),
	)
	if err != nil {
		return nil, 0, fmt.Errorf("error performing search: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, 0, fmt.Errorf("error searching documents: %s", res.String())
	}

	var parsedResponseBody pkgdto.ElasticsearchResponse
	if err := json.NewDecoder(res.Body).Decode(&parsedResponseBody); err != nil {
		return nil, 0, fmt.Errorf("error parsing the response body: %w", err)
	}

	for _, hit := range parsedResponseBody.Hits.Hits {
		data = append(data, hit.Source)
	}

	return data, parsedResponseBody.Hits.Total.Value, nil
}
