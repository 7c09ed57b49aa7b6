package gitlab

import (
	"net/url"
	"strconv"

	"golang.org/x/text/cases"
)

// AccessLevel — уровень доступа участника проекта или группы.
type AccessLevel int

// Уровни доступа GitLab.
const (
	GuestAccess     AccessLevel = 10
	ReporterAccess  AccessLevel = 20
	DeveloperAccess AccessLevel = 30
	MasterAccess    AccessLevel = 40
	OwnerAccess     AccessLevel = 50
)

var accessLevelNames = map[string]AccessLevel{
	"guest":     GuestAccess,
	"reporter":  ReporterAccess,
	"developer": DeveloperAccess,
	"master":    MasterAccess,
	"owner":     OwnerAccess,
}

// ParseAccessLevel переводит имя уровня в AccessLevel без учёта регистра.
// Неизвестное имя даёт GuestAccess.
func ParseAccessLevel(name string) AccessLevel {
	// Caser хранит состояние, поэтому создаётся на каждый вызов.
	if level, ok := accessLevelNames[cases.Fold().String(name)]; ok {
		return level
	}
	return GuestAccess
}

// EncodeValues кодирует уровень числом: access_level=30.
func (a AccessLevel) EncodeValues(key string, v *url.Values) error {
	v.Set(key, strconv.Itoa(int(a)))
	return nil
}
