package model

import "time"

// PersonModel mirrors the 'people' table. A NULL column is an absent field.
type PersonModel struct {
	ID                string     `gorm:"column:id;type:varchar(32);primaryKey"`
	Name              string     `gorm:"column:name;type:varchar(100);not null"`
	Surname           string     `gorm:"column:surname;type:varchar(100);not null;index"`
	MaidenName        *string    `gorm:"column:maiden_name;type:varchar(100)"`
	Family            *string    `gorm:"column:family;type:varchar(100)"`
	Gender            string     `gorm:"column:gender;type:varchar(10);not null"`
	MaritalStatus     string     `gorm:"column:marital_status;type:varchar(10);not null"`
	FatherID          *string    `gorm:"column:father_id;type:varchar(32);index"`
	FatherName        *string    `gorm:"column:father_name;type:varchar(200)"`
	MotherID          *string    `gorm:"column:mother_id;type:varchar(32);index"`
	MotherName        *string    `gorm:"column:mother_name;type:varchar(200)"`
	SpouseID          *string    `gorm:"column:spouse_id;type:varchar(32);index"`
	SpouseName        *string    `gorm:"column:spouse_name;type:varchar(200)"`
	BirthMonth        *string    `gorm:"column:birth_month;type:varchar(20)"`
	BirthYear         *string    `gorm:"column:birth_year;type:varchar(10)"`
	ProfilePictureURL *string    `gorm:"column:profile_picture_url;type:text"`
	Description       *string    `gorm:"column:description;type:text"`
	Status            string     `gorm:"column:status;type:varchar(16);not null;index"`
	DeletedAt         *time.Time `gorm:"column:deleted_at"`
	IsDeceased        bool       `gorm:"column:is_deceased;not null;default:false"`
	DeathDate         *time.Time `gorm:"column:death_date"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (PersonModel) TableName() string {
	return "people"
}
