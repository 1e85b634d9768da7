package model

import "frontdesk/shared/model"

const (
	TableName   = "guests"
	EntityName  = "guest"
	CachePrefix = "guest:"

	FieldID            = "id"
	FieldName          = "name"
	FieldPhone         = "phone"
	FieldEmail         = "email"
	FieldIDProofType   = "id_proof_type"
	FieldIDProofNumber = "id_proof_number"
	FieldAddress       = "address"
	FieldCreatedAt     = "created_at"
)

// Guest is keyed naturally by phone; rows are never hard-deleted.
type Guest struct {
	ID            string `db:"id"`
	Name          string `db:"name"`
	Phone         string `db:"phone"`
	Email         string `db:"email"`
	IDProofType   string `db:"id_proof_type"`
	IDProofNumber string `db:"id_proof_number"`
	Address       string `db:"address"`
	model.Metadata
}
