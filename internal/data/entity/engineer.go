package entity

import "github.com/google/uuid"

// Engineer is a directory entry for an independent installation engineer.
type Engineer struct {
	BaseNoDelete
	OwnerID         uuid.UUID `db:"owner_id"`
	Name            string    `db:"name"`
	Specialty       string    `db:"specialty"`
	Bio             *string   `db:"bio"`
	Phone           string    `db:"phone"`
	Region          string    `db:"region"`
	Locality        string    `db:"locality"`
	YearsExperience int       `db:"years_experience"`
}
