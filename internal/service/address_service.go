package service

import (
	"context"

	"github.com/JhonMohamed/Ravvisant/internal/domain"
	"github.com/JhonMohamed/Ravvisant/internal/dto"
	"github.com/JhonMohamed/Ravvisant/internal/reference"
	"github.com/JhonMohamed/Ravvisant/internal/repository"
	"github.com/JhonMohamed/Ravvisant/pkg/errs"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type AddressServiceImpl struct {
	addressRepository repository.AddressRepository
}

func CreateAddressService(addressRepository repository.AddressRepository) AddressService {
	return &AddressServiceImpl{addressRepository: addressRepository}
}

func (s *AddressServiceImpl) AddAddress(ctx context.Context, userID string, req dto.AddressRequest) (err error) {
	if !reference.IsValidDepartment(req.Department) {
		return errs.ErrInvalidDepartment
	}

	id, err := uuid.NewV7()
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddAddress").Msg("")
		return errs.ErrInternalServer
	}

	return s.addressRepository.AddAddress(ctx, domain.Address{
		ID:          id.String(),
		UserID:      userID,
		FullName:    req.FullName,
		Phone:       req.Phone,
		Department:  req.Department,
		Province:    req.Province,
		District:    req.District,
		AddressLine: req.AddressLine,
		Reference:   req.Reference,
		IsDefault:   req.IsDefault,
	})
}

func (s *AddressServiceImpl) GetAddresses(ctx context.Context, userID string) (data []dto.AddressResponse, err error) {
	addresses, err := s.addressRepository.GetAddresses(ctx, userID)
	if err != nil {
		return
	}

	data = make([]dto.AddressResponse, 0, len(addresses))
	for _, address := range addresses {
		data = append(data, dto.AddressResponse{
			ID:          address.ID,
			FullName:    address.FullName,
			Phone:       address.Phone,
			Department:  address.Department,
			Province:    address.Province,
			District:    address.District,
			AddressLine: address.AddressLine,
			Reference:   address.Reference,
			IsDefault:   address.IsDefault,
		})
	}

	return
}

func (s *AddressServiceImpl) UpdateAddress(ctx context.Context, userID string, id string, req dto.AddressRequest) (err error) {
	if !reference.IsValidDepartment(req.Department) {
		return errs.ErrInvalidDepartment
	}

	return s.addressRepository.UpdateAddress(ctx, domain.Address{
		ID:          id,
		UserID:      userID,
		FullName:    req.FullName,
		Phone:       req.Phone,
		Department:  req.Department,
		Province:    req.Province,
		District:    req.District,
		AddressLine: req.AddressLine,
		Reference:   req.Reference,
		IsDefault:   req.IsDefault,
	})
}

func (s *AddressServiceImpl) DeleteAddress(ctx context.Context, userID string, id string) (err error) {
	return s.addressRepository.DeleteAddress(ctx, userID, id)
}

func (s *AddressServiceImpl) GetDepartments(ctx context.Context) (data []dto.DepartmentResponse, err error) {
	for _, department := range reference.Departments() {
		data = append(data, dto.DepartmentResponse{
			Name:      department.Name,
			Provinces: department.Provinces,
		})
	}

	return
}
