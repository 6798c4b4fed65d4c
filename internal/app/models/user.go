package models

type User struct {
	ID        string `bson:"_id,omitempty"`
	Email     string `bson:"email"`
	Password  string `bson:"password"`
	FullName  string `bson:"fullName"`
	Phone     string `bson:"phone,omitempty"`
	Role      string `bson:"role"`
	TimeModel `bson:",inline"`
}

func (u *User) IsStaff() bool {
	return u.Role == "staff"
}
