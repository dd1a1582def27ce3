// Package catalogrepo persists suppliers, customers and items.
package catalogrepo

import (
	"warehouse/internal/core/domain/model/catalog"
	"warehouse/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SupplierDTO is the "suppliers" row. Supplier rankings group by name, so
// names are unique.
type SupplierDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name  string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Email string    `gorm:"type:varchar(255);not null"`
}

func (SupplierDTO) TableName() string {
	return "suppliers"
}

// CustomerDTO is the "customers" row. Company names are unique for the same
// reason as supplier names.
type CustomerDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyName string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	PersonName  string    `gorm:"type:varchar(255);not null"`
	Email       string    `gorm:"type:varchar(255);not null"`
}

func (CustomerDTO) TableName() string {
	return "customers"
}

// ItemDTO is the "items" row. Item names are unique so that turnover
// rankings keyed by name never merge two articles.
type ItemDTO struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name       string          `gorm:"type:varchar(255);not null;uniqueIndex"`
	Category   string          `gorm:"type:varchar(255);not null;index"`
	Price      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Stock      int             `gorm:"not null"`
	SupplierID uuid.UUID       `gorm:"type:uuid;not null;index"`
}

func (ItemDTO) TableName() string {
	return "items"
}

func supplierFromDomain(s *catalog.Supplier) SupplierDTO {
	return SupplierDTO{
		ID:    s.ID().Bytes(),
		Name:  s.Name(),
		Email: s.Email(),
	}
}

func supplierToDomain(dto SupplierDTO) (*catalog.Supplier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return catalog.NewSupplier(id, dto.Name, dto.Email)
}

func customerFromDomain(c *catalog.Customer) CustomerDTO {
	return CustomerDTO{
		ID:          c.ID().Bytes(),
		CompanyName: c.CompanyName(),
		PersonName:  c.PersonName(),
		Email:       c.Email(),
	}
}

func customerToDomain(dto CustomerDTO) (*catalog.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return catalog.NewCustomer(id, dto.CompanyName, dto.PersonName, dto.Email)
}

func itemFromDomain(i *catalog.Item) ItemDTO {
	return ItemDTO{
		ID:         i.ID().Bytes(),
		Name:       i.Name(),
		Category:   i.Category(),
		Price:      i.Price().Decimal(),
		Stock:      i.Stock(),
		SupplierID: i.SupplierID().Bytes(),
	}
}

func itemToDomain(dto ItemDTO) (*catalog.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	supplierID, err := kernel.UUIDFromBytes(dto.SupplierID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	return catalog.NewItem(id, dto.Name, dto.Category, price, dto.Stock, supplierID)
}
