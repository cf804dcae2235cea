package usecase

import (
	"strings"

	"github.com/puntoventa/minimarket-api/internal/application/dto"
	"github.com/puntoventa/minimarket-api/internal/domain"
	"github.com/puntoventa/minimarket-api/internal/domain/entity"
	"github.com/puntoventa/minimarket-api/internal/domain/repository"
)

// CategoryUseCase casos de uso de la taxonomía familia/subfamilia.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// ListAll devuelve el árbol completo: familias y subfamilias con conteos.
func (uc *CategoryUseCase) ListAll() (*dto.CategoriesResponse, error) {
	families, err := uc.repo.ListFamilies()
	if err != nil {
		return nil, err
	}
	subfamilies, err := uc.repo.ListSubfamilies()
	if err != nil {
		return nil, err
	}
	resp := &dto.CategoriesResponse{
		Families:    make([]dto.FamilyResponse, 0, len(families)),
		Subfamilies: make([]dto.SubfamilyResponse, 0, len(subfamilies)),
	}
	for _, f := range families {
		resp.Families = append(resp.Families, dto.FamilyResponse{ID: f.ID, Name: f.Name})
	}
	for _, s := range subfamilies {
		resp.Subfamilies = append(resp.Subfamilies, dto.SubfamilyResponse{
			ID:           s.ID,
			FamilyID:     s.FamilyID,
			FamilyName:   s.FamilyName,
			Name:         s.Name,
			ProductCount: s.ProductCount,
		})
	}
	return resp, nil
}

// CreateFamily crea una familia. El nombre es único.
func (uc *CategoryUseCase) CreateFamily(in dto.CategoryNameRequest) (*dto.FamilyResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetFamilyByName(name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	family := &entity.Family{Name: name}
	if err := uc.repo.CreateFamily(family); err != nil {
		return nil, err
	}
	return &dto.FamilyResponse{ID: family.ID, Name: family.Name}, nil
}

// UpdateFamily renombra una familia.
func (uc *CategoryUseCase) UpdateFamily(id int64, in dto.CategoryNameRequest) (*dto.FamilyResponse, error) {
	family, err := uc.repo.GetFamily(id)
	if err != nil {
		return nil, err
	}
	if family == nil {
		return nil, domain.ErrNotFound
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	family.Name = name
	if err := uc.repo.UpdateFamily(family); err != nil {
		return nil, err
	}
	return &dto.FamilyResponse{ID: family.ID, Name: family.Name}, nil
}

// DeleteFamily elimina una familia vacía; con subfamilias el adaptador
// devuelve domain.ErrInUse.
func (uc *CategoryUseCase) DeleteFamily(id int64) error {
	family, err := uc.repo.GetFamily(id)
	if err != nil {
		return err
	}
	if family == nil {
		return domain.ErrNotFound
	}
	return uc.repo.DeleteFamily(id)
}

// CreateSubfamily crea una subfamilia colgando de una familia existente.
func (uc *CategoryUseCase) CreateSubfamily(in dto.CategoryNameRequest) (*dto.SubfamilyResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || in.FamilyID < 1 {
		return nil, domain.ErrInvalidInput
	}
	family, err := uc.repo.GetFamily(in.FamilyID)
	if err != nil {
		return nil, err
	}
	if family == nil {
		return nil, domain.ErrNotFound
	}
	subfamily := &entity.Subfamily{FamilyID: in.FamilyID, Name: name}
	if err := uc.repo.CreateSubfamily(subfamily); err != nil {
		return nil, err
	}
	return &dto.SubfamilyResponse{
		ID:         subfamily.ID,
		FamilyID:   subfamily.FamilyID,
		FamilyName: family.Name,
		Name:       subfamily.Name,
	}, nil
}

// UpdateSubfamily renombra una subfamilia o la mueve de familia.
func (uc *CategoryUseCase) UpdateSubfamily(id int64, in dto.CategoryNameRequest) (*dto.SubfamilyResponse, error) {
	subfamily, err := uc.repo.GetSubfamily(id)
	if err != nil {
		return nil, err
	}
	if subfamily == nil {
		return nil, domain.ErrNotFound
	}
	if name := strings.TrimSpace(in.Name); name != "" {
		subfamily.Name = name
	}
	if in.FamilyID > 0 && in.FamilyID != subfamily.FamilyID {
		family, err := uc.repo.GetFamily(in.FamilyID)
		if err != nil {
			return nil, err
		}
		if family == nil {
			return nil, domain.ErrNotFound
		}
		subfamily.FamilyID = in.FamilyID
		subfamily.FamilyName = family.Name
	}
	if err := uc.repo.UpdateSubfamily(subfamily); err != nil {
		return nil, err
	}
	return &dto.SubfamilyResponse{
		ID:           subfamily.ID,
		FamilyID:     subfamily.FamilyID,
		FamilyName:   subfamily.FamilyName,
		Name:         subfamily.Name,
		ProductCount: subfamily.ProductCount,
	}, nil
}

// DeleteSubfamily elimina una subfamilia sin productos; con productos el
// adaptador devuelve domain.ErrInUse.
func (uc *CategoryUseCase) DeleteSubfamily(id int64) error {
	subfamily, err := uc.repo.GetSubfamily(id)
	if err != nil {
		return err
	}
	if subfamily == nil {
		return domain.ErrNotFound
	}
	return uc.repo.DeleteSubfamily(id)
}
