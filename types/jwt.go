package types

import "github.com/golang-jwt/jwt/v5"

// Claims represents the JWT claims carried by a technician session token
type Claims struct {
	TechnicianID uint `json:"technician_id"`
	jwt.RegisteredClaims
}
