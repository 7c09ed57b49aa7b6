// Package gitlabtest предоставляет тестовые утилиты для пакета gitlab.
//
// # MockClient
//
// MockClient реализует gitlab.API и все ролевые интерфейсы (UserService,
// ProjectService, BranchService и др.). Поведение задаётся функциональными
// полями; незаданное поле возвращает пустой успешный результат.
//
//	mock := gitlabtest.NewMockClient()
//	mock.ProtectBranchFunc = func(ctx context.Context, pid any, branch string, _ ...gitlab.RequestOption) (bool, error) {
//	    return branch == "develop", nil
//	}
//
// # Конструкторы
//
//   - NewMockClient — мок без заданных функций
//   - NewMockClientWithUsers — GetUsers и GetUser по заданному списку
//   - NewMockClientWithProject — GetProject с фиксированным проектом
//   - NotFound — ошибка, соответствующая ответу 404
package gitlabtest
