package models

// User - профиль пользователя, которым владеет провайдер идентификации.
// Сервис только читает его; Instagram и Phone никогда не отдаются через поиск рядом.
type User struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	AvatarURL *string `json:"avatar_url,omitempty"`
	Instagram *string `json:"-"`
	Phone     *string `json:"-"`
}
