package middleware

import (
	"context"

	"accountd/app/models"
)

func GetUser(ctx context.Context) *models.User {
	if v := ctx.Value(UserKey); v != nil {
		if u, ok := v.(*models.User); ok {
			return u
		}
	}
	return nil
}
