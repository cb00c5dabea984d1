package ptr

// NilIfEmpty возвращает nil для пустой строки
func NilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
