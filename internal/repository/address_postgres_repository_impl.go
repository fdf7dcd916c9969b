package repository

import (
	"context"
	"time"

	"github.com/JhonMohamed/Ravvisant/internal/domain"
	"github.com/JhonMohamed/Ravvisant/pkg/errs"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type AddressRepositoryImpl struct {
	db *sqlx.DB
}

func CreateNewAddressRepository(db *sqlx.DB) AddressRepository {
	return &AddressRepositoryImpl{db: db}
}

func (r *AddressRepositoryImpl) AddAddress(ctx context.Context, data domain.Address) (err error) {
	timestamp := time.Now().UnixMilli()
	data.CreatedAt = timestamp
	data.UpdatedAt = timestamp

	_, err = r.db.NamedExecContext(ctx, "INSERT INTO addresses(id, user_id, full_name, phone, department, province, district, address_line, reference, is_default, created_at, updated_at) VALUES (:id, :user_id, :full_name, :phone, :department, :province, :district, :address_line, :reference, :is_default, :created_at, :updated_at)", data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddAddress").Msg("")
		return errs.ErrInternalServer
	}

	return nil
}

func (r *AddressRepositoryImpl) GetAddresses(ctx context.Context, userID string) (data []domain.Address, err error) {
	err = r.db.SelectContext(ctx, &data, "SELECT * FROM addresses WHERE user_id = $1 AND deleted_at IS NULL ORDER BY is_default DESC, created_at DESC", userID)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetAddresses").Msg("")
		return data, errs.ErrInternalServer
	}

	return data, nil
}

func (r *AddressRepositoryImpl) UpdateAddress(ctx context.Context, data domain.Address) (err error) {
	data.UpdatedAt = time.Now().UnixMilli()

	result, err := r.db.NamedExecContext(ctx, "UPDATE addresses SET full_name = :full_name, phone = :phone, department = :department, province = :province, district = :district, address_line = :address_line, reference = :reference, is_default = :is_default, updated_at = :updated_at WHERE id = :id AND user_id = :user_id AND deleted_at IS NULL", data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateAddress").Msg("")
		return errs.ErrInternalServer
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return errs.ErrInternalServer
	}

	if affected == 0 {
		return errs.ErrAddressNotFound
	}

	return nil
}

func (r *AddressRepositoryImpl) DeleteAddress(ctx context.Context, userID string, id string) (err error) {
	result, err := r.db.ExecContext(ctx, "UPDATE addresses SET deleted_at = NOW() WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL", id, userID)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteAddress").Msg("")
		return errs.ErrInternalServer
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return errs.ErrInternalServer
	}

	if affected == 0 {
		return errs.ErrAddressNotFound
	}

	return nil
}
