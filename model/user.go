package model

import "time"

type User struct {
	UserID    string    `bson:"user_id" json:"id"`
	FullName  string    `bson:"full_name" json:"fullName"`
	Email     string    `bson:"email" json:"email"`
	Password  string    `bson:"password" json:"-"` // argon2id hash
	CreatedAt time.Time `bson:"created_at" json:"createdOn"`
}
