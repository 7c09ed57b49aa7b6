package constants

import "time"

// Версия API и пути.
const (
	// APIVersion — версия REST API GitLab, с которой работает клиент.
	APIVersion = "v3"
	// APIPathPrefix добавляется к host для получения базового URL API.
	APIPathPrefix = "/api/" + APIVersion
	// DefaultScheme подставляется, если host указан без схемы.
	DefaultScheme = "https://"
)

// Заголовки запросов.
const (
	HeaderPrivateToken  = "PRIVATE-TOKEN"
	HeaderSudo          = "SUDO"
	HeaderAuthorization = "Authorization"
	HeaderUserAgent     = "User-Agent"
	HeaderContentDisp   = "Content-Disposition"
)

// Значения по умолчанию для клиента.
const (
	DefaultTimeout   = 30 * time.Second
	DefaultUserAgent = "gitlab-client/" + Version
)

// Version — версия библиотеки, попадает в User-Agent и service.version трейсинга.
const Version = "0.3.0"
