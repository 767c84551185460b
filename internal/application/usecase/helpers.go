package usecase

import (
	"time"

	"github.com/jhoicas/sns-api/internal/application/dto"
)

// clock permite fijar la hora en tests.
var clock = func() time.Time { return time.Now().UTC() }

func page(p dto.PageRequest) (offset, limit int) {
	p.Normalize()
	return p.Skip, p.Limit
}

func nowPtr() *time.Time {
	t := clock()
	return &t
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setOptString(dst **string, src *string) {
	if src != nil {
		v := *src
		*dst = &v
	}
}

func setOptInt64(dst **int64, src *int64) {
	if src != nil {
		v := *src
		*dst = &v
	}
}

func setOptInt(dst **int, src *int) {
	if src != nil {
		v := *src
		*dst = &v
	}
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}

func orDefault(s *string, def string) *string {
	if s != nil {
		return s
	}
	return &def
}

func intOrDefault(n *int, def int) *int {
	if n != nil {
		return n
	}
	return &def
}
