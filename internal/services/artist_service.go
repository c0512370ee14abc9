package services

import (
	"encoding/json"

	"inklink_backend/internal/auth"
	"inklink_backend/internal/models"
	"inklink_backend/internal/repositories"
	"inklink_backend/internal/services/dto"
	"inklink_backend/pkg/apperrors"

	"gorm.io/datatypes"
)

const defaultListLimit = 20

type ArtistService struct {
	artistRepo repositories.ArtistRepository
	parlorRepo repositories.ParlorRepository
}

func NewArtistService(artistRepo repositories.ArtistRepository, parlorRepo repositories.ParlorRepository) *ArtistService {
	return &ArtistService{artistRepo: artistRepo, parlorRepo: parlorRepo}
}

// CreateArtist creates a profile owned by the caller. Admins may create a
// profile for another user via UserID.
func (s *ArtistService) CreateArtist(userID string, role models.UserRole, req *dto.CreateArtistRequest) (*models.Artist, error) {
	ownerID := userID
	if req.UserID != "" && req.UserID != userID {
		if role != models.UserRoleAdmin {
			return nil, apperrors.ErrInsufficientPermissions
		}
		ownerID = req.UserID
	}

	if _, err := s.artistRepo.FindByUserID(ownerID); err == nil {
		return nil, apperrors.ErrAlreadyExists(nil, "artist", "Artist profile already exists for this user")
	} else if !apperrors.Is(err, repositories.ErrArtistNotFound) {
		return nil, err
	}

	if req.ParlorID != nil {
		if _, err := s.parlorRepo.FindByID(*req.ParlorID); err != nil {
			if apperrors.Is(err, repositories.ErrParlorNotFound) {
				return nil, apperrors.ErrParlorNotFound
			}
			return nil, err
		}
	}

	specialties, err := marshalStringList(req.Specialties)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	artist := &models.Artist{
		UserID:        ownerID,
		Name:          req.Name,
		Bio:           req.Bio,
		Specialties:   specialties,
		City:          req.City,
		State:         req.State,
		Country:       req.Country,
		ParlorID:      req.ParlorID,
		TravelWilling: req.TravelWilling,
	}
	if err := s.artistRepo.Create(artist); err != nil {
		return nil, err
	}
	return artist, nil
}

func (s *ArtistService) GetArtist(id string) (*models.Artist, error) {
	return s.findArtist(id)
}

func (s *ArtistService) GetArtistByUser(userID string) (*models.Artist, error) {
	artist, err := s.artistRepo.FindByUserID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrArtistNotFound) {
			return nil, apperrors.ErrArtistNotFound
		}
		return nil, err
	}
	return artist, nil
}

func (s *ArtistService) ListArtists(filter repositories.ArtistFilter) ([]models.Artist, error) {
	return s.artistRepo.FindAll(filter)
}

func (s *ArtistService) GetFeatured(limit int) ([]models.Artist, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	return s.artistRepo.FindFeatured(limit)
}

func (s *ArtistService) GetSponsored(limit int) ([]models.Artist, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	return s.artistRepo.FindSponsored(limit)
}

func (s *ArtistService) GetTraveling(limit int) ([]models.Artist, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	return s.artistRepo.FindTraveling(limit)
}

func (s *ArtistService) Search(term string, limit int) ([]models.Artist, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	return s.artistRepo.Search(term, limit)
}

func (s *ArtistService) UpdateArtist(id, userID string, role models.UserRole, req *dto.UpdateArtistRequest) (*models.Artist, error) {
	artist, err := s.findArtist(id)
	if err != nil {
		return nil, err
	}
	if !auth.CanManageArtist(userID, role, artist) {
		return nil, apperrors.ErrInsufficientPermissions
	}

	if req.Name != nil {
		artist.Name = *req.Name
	}
	if req.Bio != nil {
		artist.Bio = *req.Bio
	}
	if req.Specialties != nil {
		specialties, err := marshalStringList(req.Specialties)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		artist.Specialties = specialties
	}
	if req.City != nil {
		artist.City = *req.City
	}
	if req.State != nil {
		artist.State = *req.State
	}
	if req.Country != nil {
		artist.Country = *req.Country
	}
	if req.ParlorID != nil {
		if *req.ParlorID == "" {
			artist.ParlorID = nil
		} else {
			if _, err := s.parlorRepo.FindByID(*req.ParlorID); err != nil {
				if apperrors.Is(err, repositories.ErrParlorNotFound) {
					return nil, apperrors.ErrParlorNotFound
				}
				return nil, err
			}
			artist.ParlorID = req.ParlorID
		}
	}
	if req.TravelWilling != nil {
		artist.TravelWilling = *req.TravelWilling
	}

	// Promotion flags are admin-only.
	if req.Featured != nil || req.Sponsored != nil {
		if role != models.UserRoleAdmin {
			return nil, apperrors.ErrInsufficientPermissions
		}
		if req.Featured != nil {
			artist.Featured = *req.Featured
		}
		if req.Sponsored != nil {
			artist.Sponsored = *req.Sponsored
		}
	}

	if err := s.artistRepo.Update(artist); err != nil {
		return nil, err
	}
	return artist, nil
}

func (s *ArtistService) DeleteArtist(id, userID string, role models.UserRole) error {
	artist, err := s.findArtist(id)
	if err != nil {
		return err
	}
	if !auth.CanManageArtist(userID, role, artist) {
		return apperrors.ErrInsufficientPermissions
	}

	if err := s.artistRepo.Delete(id); err != nil {
		if apperrors.Is(err, repositories.ErrArtistNotFound) {
			return apperrors.ErrArtistNotFound
		}
		return err
	}
	return nil
}

func (s *ArtistService) findArtist(id string) (*models.Artist, error) {
	artist, err := s.artistRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrArtistNotFound) {
			return nil, apperrors.ErrArtistNotFound
		}
		return nil, err
	}
	return artist, nil
}

func marshalStringList(items []string) (datatypes.JSON, error) {
	if items == nil {
		items = []string{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}
