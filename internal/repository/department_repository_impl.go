package repository

import (
	"clinic-registry/internal/domain/entity"
	domainRepo "clinic-registry/internal/domain/repository"

	"gorm.io/gorm"
)

type departmentRepository struct{}

func NewDepartmentRepository() domainRepo.DepartmentRepository {
	return &departmentRepository{}
}

func (r *departmentRepository) Create(db *gorm.DB, department *entity.Department) error {
	return db.Create(department).Error
}

func (r *departmentRepository) FindAll(db *gorm.DB, limit int) ([]entity.DepartmentListItem, error) {
	departments := []entity.DepartmentListItem{}
	err := db.Table("departments dep").
		Select("dep.department_id, dep.name, dep.description, dep.doctor_id, d.full_name AS head_doctor").
		Joins("LEFT JOIN doctors d ON dep.doctor_id = d.doctor_id").
		Order("dep.name").
		Limit(limit).
		Scan(&departments).Error
	if err != nil {
		return nil, err
	}
	return departments, nil
}

func (r *departmentRepository) Update(db *gorm.DB, department *entity.Department) (int64, error) {
	result := db.Model(&entity.Department{}).
		Where("department_id = ?", department.DepartmentID).
		Select("name", "description", "doctor_id").
		Updates(department)
	return result.RowsAffected, result.Error
}
