package http

// onlyActive filtra una página ya leída; las rutas públicas nunca exponen filas inactivas.
func onlyActive[T any](list []T, active func(T) bool) []T {
	out := make([]T, 0, len(list))
	for _, r := range list {
		if active(r) {
			out = append(out, r)
		}
	}
	return out
}
