package elasticsearch

import (
	"net/http"

	"github.com/JhonMohamed/Ravvisant/config"
	"github.com/elastic/go-elasticsearch"
	"github.com/rs/zerolog/log"
)

var esClientInstance *elasticsearch.Client

func CreateElasticsearchClient(config *config.Config) (*elasticsearch.Client, error) {
	var err error

	cfg := elasticsearch.Config{
		Addresses: []string{
			config.ElasticsearchConfig.DBHost,
		},
		Transport: http.DefaultTransport,
	}

	esClientInstance, err = elasticsearch.NewClient(cfg)
	if err != nil {
		log.Error().Err(err).Str("component", "CreateElasticsearchClient").Msg("")
		return esClientInstance, err
	}

	res, err := esClientInstance.Info()
	if err != nil {
		log.Error().Err(err).Str("component", "CreateElasticsearchClient").Msg("")
		return esClientInstance, err
	}
	defer res.Body.Close()

	if res.IsError() {
		log.Error().Str("component", "CreateElasticsearchClient").Msg(res.String())
	}

	return esClientInstance, err
}
