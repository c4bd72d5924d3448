// Package mapper переводит сущности в DTO и обратно.
// Каждое преобразование написано вручную, без reflection.
package mapper

// Profile связывает сущность T с её DTO D парой чистых функций.
type Profile[T any, D any] struct {
	ToDTO    func(T) D
	ToEntity func(D) T
}

// ToDTOs преобразует список сущностей, сохраняя порядок.
func (p Profile[T, D]) ToDTOs(items []T) []D {
	result := make([]D, 0, len(items))
	for _, item := range items {
		result = append(result, p.ToDTO(item))
	}
	return result
}

// ToEntities преобразует список DTO, сохраняя порядок.
func (p Profile[T, D]) ToEntities(items []D) []T {
	result := make([]T, 0, len(items))
	for _, item := range items {
		result = append(result, p.ToEntity(item))
	}
	return result
}

// cloneStrings копирует список, nil превращается в пустой список.
func cloneStrings(src []string) []string {
	dst := make([]string, len(src))
	copy(dst, src)
	return dst
}
