package statusrepo

// ClassificationCodeDTO represents the lookup table mapping classification
// codes to human readable descriptions. Maintained by an external system;
// this service only reads it when building reports.
type ClassificationCodeDTO struct {
	Code        string `gorm:"primaryKey"`
	Description string
}

// TableName specifies the database table name for classification codes.
func (ClassificationCodeDTO) TableName() string {
	return "classification_codes"
}
