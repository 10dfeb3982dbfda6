package domain

import "time"

// Role は職制の閉集合。画面側の権限制御もこの値を前提にしている。
type Role string

const (
	RoleAdmin Role = "Admin"
	RoleRSM   Role = "RSM"
	RoleASM   Role = "ASM"
	RoleUser  Role = "User"
)

// Valid reports whether the role belongs to the closed set.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleRSM, RoleASM, RoleUser:
		return true
	}
	return false
}

// Account はスタッフ 1 名分のアカウント集約。
// PushTokens は端末ごとに登録されるため 0 件以上。理論上は同じトークンが
// 別アカウントへ再登録され得るので、配信側でグローバルに重複排除する。
type Account struct {
	ID         string
	Email      string
	Name       string
	Role       Role
	Regions    []string
	PushTokens []string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
