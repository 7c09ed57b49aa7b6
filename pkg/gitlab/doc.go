// Package gitlab реализует клиент REST API GitLab версии v3.
//
// Каждый метод ресурса строит путь относительно /api/v3, вызывает
// транспортный хелпер (Get, Post, Put, Delete), проверяет статус ответа по
// списку допустимых кодов и декодирует JSON тело в типизированную структуру.
//
// Создание клиента:
//
//	client, err := gitlab.NewClient("gitlab.example.com",
//	    gitlab.WithPrivateToken(token),
//	    gitlab.WithTimeout(10*time.Second),
//	)
//	users, err := client.GetUsers(ctx, &gitlab.ListUsersOptions{Search: gitlab.Ptr("john")})
//
// Ошибки имеют тип *GitLabError (код, HTTP статус, сообщение сервера) или
// *ValidationError для некорректных аргументов. С WithSuppressHTTPError(true)
// неуспешные HTTP статусы превращаются в пустой результат (nil, false) без
// ошибки; ошибки транспорта (нет соединения, таймаут, отмена context)
// возвращаются всегда.
//
// Идентификатор проекта или группы (параметр pid/gid типа any) может быть
// числом или путём "namespace/name"; путь экранируется в один сегмент URL.
//
// Клиент безопасен для конкурентного использования.
package gitlab
