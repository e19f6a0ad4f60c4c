package usecase

import (
	"context"
	"errors"
	"strings"

	"barkmart/internal/domain/model"
	repo "barkmart/internal/repository"
)

// 住所管理の業務ロジック
type AddressUsecase struct {
	addressRepo repo.AddressRepository
}

// DI
func NewAddressUsecase(addressRepo repo.AddressRepository) *AddressUsecase {
	return &AddressUsecase{addressRepo: addressRepo}
}

type AddressInput struct {
	StreetAddress string `json:"street_address"`
	City          string `json:"city"`
	State         string `json:"state"`
	ZipCode       string `json:"zip_code"`
	Country       string `json:"country"`
}

func (in AddressInput) validate() error {
	if strings.TrimSpace(in.StreetAddress) == "" {
		return NewValidationError("street_address is required")
	}
	if strings.TrimSpace(in.City) == "" {
		return NewValidationError("city is required")
	}
	if strings.TrimSpace(in.State) == "" {
		return NewValidationError("state is required")
	}
	if strings.TrimSpace(in.ZipCode) == "" {
		return NewValidationError("zip_code is required")
	}
	return nil
}

func (u *AddressUsecase) List(ctx context.Context, userID int64) ([]model.Address, error) {
	if userID <= 0 {
		return nil, ErrUnauthorized
	}

	list, err := u.addressRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, newPersistenceError(err)
	}
	return list, nil
}

func (u *AddressUsecase) Create(ctx context.Context, userID int64, in AddressInput) (model.Address, error) {
	if userID <= 0 {
		return model.Address{}, ErrUnauthorized
	}
	if err := in.validate(); err != nil {
		return model.Address{}, err
	}

	country := strings.TrimSpace(in.Country)
	if country == "" {
		country = "USA"
	}

	created, err := u.addressRepo.Create(ctx, model.Address{
		UserID:        userID,
		StreetAddress: in.StreetAddress,
		City:          in.City,
		State:         in.State,
		ZipCode:       in.ZipCode,
		Country:       country,
		IsDefault:     false,
	})
	if err != nil {
		return model.Address{}, newPersistenceError(err)
	}
	return created, nil
}

func (u *AddressUsecase) Update(ctx context.Context, userID int64, addressID int64, in AddressInput) (model.Address, error) {
	if userID <= 0 {
		return model.Address{}, ErrUnauthorized
	}
	if addressID <= 0 {
		return model.Address{}, NewValidationError("invalid id")
	}
	if err := in.validate(); err != nil {
		return model.Address{}, err
	}

	owned, err := u.addressRepo.IsOwnedByUser(ctx, addressID, userID)
	if err != nil {
		return model.Address{}, newPersistenceError(err)
	}
	if !owned {
		return model.Address{}, &NotFoundError{Resource: "address"}
	}

	country := strings.TrimSpace(in.Country)
	if country == "" {
		country = "USA"
	}

	if err := u.addressRepo.Update(ctx, model.Address{
		ID:            addressID,
		StreetAddress: in.StreetAddress,
		City:          in.City,
		State:         in.State,
		ZipCode:       in.ZipCode,
		Country:       country,
	}); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return model.Address{}, &NotFoundError{Resource: "address"}
		}
		return model.Address{}, newPersistenceError(err)
	}

	updated, err := u.addressRepo.FindByID(ctx, addressID)
	if err != nil {
		return model.Address{}, newPersistenceError(err)
	}
	return updated, nil
}

func (u *AddressUsecase) Delete(ctx context.Context, userID int64, addressID int64) error {
	if userID <= 0 {
		return ErrUnauthorized
	}
	if addressID <= 0 {
		return NewValidationError("invalid id")
	}

	owned, err := u.addressRepo.IsOwnedByUser(ctx, addressID, userID)
	if err != nil {
		return newPersistenceError(err)
	}
	if !owned {
		return &NotFoundError{Resource: "address"}
	}

	if err := u.addressRepo.Delete(ctx, addressID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return &NotFoundError{Resource: "address"}
		}
		return newPersistenceError(err)
	}
	return nil
}

// SetDefault はデフォルト住所を切り替える。1ユーザーにつき1件だけtrue
func (u *AddressUsecase) SetDefault(ctx context.Context, userID int64, addressID int64) error {
	if userID <= 0 {
		return ErrUnauthorized
	}
	if addressID <= 0 {
		return NewValidationError("invalid id")
	}

	if err := u.addressRepo.SetDefault(ctx, userID, addressID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return &NotFoundError{Resource: "address"}
		}
		return newPersistenceError(err)
	}
	return nil
}
