package services

import (
	"inklink_backend/internal/auth"
	"inklink_backend/internal/models"
	"inklink_backend/internal/repositories"
	"inklink_backend/internal/services/dto"
	"inklink_backend/pkg/apperrors"
)

type ParlorService struct {
	parlorRepo repositories.ParlorRepository
	userRepo   repositories.UserRepository
}

func NewParlorService(parlorRepo repositories.ParlorRepository, userRepo repositories.UserRepository) *ParlorService {
	return &ParlorService{parlorRepo: parlorRepo, userRepo: userRepo}
}

// CreateParlor creates a parlor owned by the caller. Admins may assign
// another owner via OwnerID.
func (s *ParlorService) CreateParlor(userID string, role models.UserRole, req *dto.CreateParlorRequest) (*models.Parlor, error) {
	ownerID := userID
	if req.OwnerID != "" && req.OwnerID != userID {
		if role != models.UserRoleAdmin {
			return nil, apperrors.ErrInsufficientPermissions
		}
		if _, err := s.userRepo.FindByID(req.OwnerID); err != nil {
			if apperrors.Is(err, repositories.ErrUserNotFound) {
				return nil, apperrors.ErrUserNotFound
			}
			return nil, err
		}
		ownerID = req.OwnerID
	}

	amenities, err := marshalStringList(req.Amenities)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	parlor := &models.Parlor{
		OwnerID:     ownerID,
		Name:        req.Name,
		Description: req.Description,
		Address:     req.Address,
		City:        req.City,
		State:       req.State,
		Country:     req.Country,
		PostalCode:  req.PostalCode,
		Amenities:   amenities,
	}
	if err := s.parlorRepo.Create(parlor); err != nil {
		return nil, err
	}
	return parlor, nil
}

func (s *ParlorService) GetParlor(id string) (*models.Parlor, error) {
	return s.findParlor(id)
}

func (s *ParlorService) GetOwnerParlors(ownerID string) ([]models.Parlor, error) {
	return s.parlorRepo.FindByOwnerID(ownerID)
}

func (s *ParlorService) ListParlors(filter repositories.ParlorFilter) ([]models.Parlor, error) {
	return s.parlorRepo.FindAll(filter)
}

func (s *ParlorService) GetFeatured(limit int) ([]models.Parlor, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	return s.parlorRepo.FindFeatured(limit)
}

func (s *ParlorService) GetSponsored(limit int) ([]models.Parlor, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	return s.parlorRepo.FindSponsored(limit)
}

func (s *ParlorService) Search(term string, limit int) ([]models.Parlor, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	return s.parlorRepo.Search(term, limit)
}

func (s *ParlorService) UpdateParlor(id, userID string, role models.UserRole, req *dto.UpdateParlorRequest) (*models.Parlor, error) {
	parlor, err := s.findParlor(id)
	if err != nil {
		return nil, err
	}
	if !auth.CanManageParlor(userID, role, parlor) {
		return nil, apperrors.ErrInsufficientPermissions
	}

	if req.Name != nil {
		parlor.Name = *req.Name
	}
	if req.Description != nil {
		parlor.Description = *req.Description
	}
	if req.Address != nil {
		parlor.Address = *req.Address
	}
	if req.City != nil {
		parlor.City = *req.City
	}
	if req.State != nil {
		parlor.State = *req.State
	}
	if req.Country != nil {
		parlor.Country = *req.Country
	}
	if req.PostalCode != nil {
		parlor.PostalCode = *req.PostalCode
	}
	if req.Amenities != nil {
		amenities, err := marshalStringList(req.Amenities)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		parlor.Amenities = amenities
	}

	// Promotion flags are admin-only.
	if req.Featured != nil || req.Sponsored != nil {
		if role != models.UserRoleAdmin {
			return nil, apperrors.ErrInsufficientPermissions
		}
		if req.Featured != nil {
			parlor.Featured = *req.Featured
		}
		if req.Sponsored != nil {
			parlor.Sponsored = *req.Sponsored
		}
	}

	if err := s.parlorRepo.Update(parlor); err != nil {
		return nil, err
	}
	return parlor, nil
}

func (s *ParlorService) DeleteParlor(id, userID string, role models.UserRole) error {
	parlor, err := s.findParlor(id)
	if err != nil {
		return err
	}
	if !auth.CanManageParlor(userID, role, parlor) {
		return apperrors.ErrInsufficientPermissions
	}

	if err := s.parlorRepo.Delete(id); err != nil {
		if apperrors.Is(err, repositories.ErrParlorNotFound) {
			return apperrors.ErrParlorNotFound
		}
		return err
	}
	return nil
}

func (s *ParlorService) findParlor(id string) (*models.Parlor, error) {
	parlor, err := s.parlorRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrParlorNotFound) {
			return nil, apperrors.ErrParlorNotFound
		}
		return nil, err
	}
	return parlor, nil
}
