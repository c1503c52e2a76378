package service

import (
	"context"
	"errors"
	"fmt"

	"review-api/internal/apperror"
	"review-api/internal/auth"
	"review-api/internal/models"

	"gorm.io/gorm"
)

const duplicateEmployeeMessage = "An employee with the same name or email already exists."

type EmployeeService struct {
	db *gorm.DB
}

func NewEmployeeService(db *gorm.DB) *EmployeeService {
	return &EmployeeService{db: db}
}

func (s *EmployeeService) Create(ctx context.Context, input CreateEmployeeInput) (EmployeeDTO, error) {
	name, email := input.Name, input.Email
	if err := s.ensureUnique(ctx, &name, &email, ""); err != nil {
		return EmployeeDTO{}, err
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return EmployeeDTO{}, fmt.Errorf("hash password: %w", err)
	}

	employee := models.Employee{
		Name:     input.Name,
		Email:    input.Email,
		Password: hash,
		IsAdmin:  input.IsAdmin,
	}
	if err := s.db.WithContext(ctx).Create(&employee).Error; err != nil {
		if isUniqueViolation(err) {
			return EmployeeDTO{}, apperror.BadRequest(duplicateEmployeeMessage)
		}
		return EmployeeDTO{}, fmt.Errorf("create employee: %w", err)
	}

	return employeeToDTO(employee), nil
}

func (s *EmployeeService) List(ctx context.Context) ([]EmployeeDTO, error) {
	var employees []models.Employee
	if err := s.db.WithContext(ctx).Order("created_at ASC").Find(&employees).Error; err != nil {
		return nil, fmt.Errorf("load employees: %w", err)
	}

	result := make([]EmployeeDTO, 0, len(employees))
	for _, employee := range employees {
		result = append(result, employeeToDTO(employee))
	}
	return result, nil
}

// Get loads the full employee row, password hash included.
func (s *EmployeeService) Get(ctx context.Context, id string) (models.Employee, error) {
	var employee models.Employee
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&employee).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Employee{}, apperror.NotFound("Employee not found.")
		}
		return models.Employee{}, fmt.Errorf("load employee: %w", err)
	}
	return employee, nil
}

func (s *EmployeeService) Update(ctx context.Context, id string, input UpdateEmployeeInput) (EmployeeDTO, error) {
	employee, err := s.Get(ctx, id)
	if err != nil {
		return EmployeeDTO{}, err
	}

	if err := s.ensureUnique(ctx, input.Name, input.Email, id); err != nil {
		return EmployeeDTO{}, err
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Email != nil {
		updates["email"] = *input.Email
	}
	if input.Password != nil {
		hash, err := auth.HashPassword(*input.Password)
		if err != nil {
			return EmployeeDTO{}, fmt.Errorf("hash password: %w", err)
		}
		updates["password"] = hash
	}
	if input.IsAdmin != nil {
		updates["is_admin"] = *input.IsAdmin
	}

	if len(updates) > 0 {
		if err := s.db.WithContext(ctx).Model(&employee).Updates(updates).Error; err != nil {
			if isUniqueViolation(err) {
				return EmployeeDTO{}, apperror.BadRequest(duplicateEmployeeMessage)
			}
			return EmployeeDTO{}, fmt.Errorf("update employee: %w", err)
		}
		if employee, err = s.Get(ctx, id); err != nil {
			return EmployeeDTO{}, err
		}
	}

	return employeeToDTO(employee), nil
}

func (s *EmployeeService) Delete(ctx context.Context, id string) (EmployeeDTO, error) {
	employee, err := s.Get(ctx, id)
	if err != nil {
		return EmployeeDTO{}, err
	}

	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Employee{})
	if result.Error != nil {
		return EmployeeDTO{}, fmt.Errorf("delete employee: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return EmployeeDTO{}, apperror.NotFound("Employee not found.")
	}

	return employeeToDTO(employee), nil
}

// ensureUnique rejects a name or email already held by another employee.
// The unique indexes remain the real guarantee; this only produces the
// friendly error before the write.
func (s *EmployeeService) ensureUnique(ctx context.Context, name, email *string, excludeID string) error {
	if name == nil && email == nil {
		return nil
	}

	query := s.db.WithContext(ctx).Model(&models.Employee{})
	switch {
	case name != nil && email != nil:
		query = query.Where("name = ? OR email = ?", *name, *email)
	case name != nil:
		query = query.Where("name = ?", *name)
	default:
		query = query.Where("email = ?", *email)
	}
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return fmt.Errorf("check employee uniqueness: %w", err)
	}
	if count > 0 {
		return apperror.BadRequest(duplicateEmployeeMessage)
	}
	return nil
}

func employeeToDTO(employee models.Employee) EmployeeDTO {
	return EmployeeDTO{
		ID:      employee.ID,
		Name:    employee.Name,
		Email:   employee.Email,
		IsAdmin: employee.IsAdmin,
	}
}
