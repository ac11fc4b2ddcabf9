package utils

import (
	"campsite-market-server/access"

	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
)

// UserIDFromTokenMiddleware extracts the caller's identity from the JWT and
// stores it in the request values for downstream handlers.
func UserIDFromTokenMiddleware(ctx iris.Context) {
	claims := jwt.Get(ctx).(*AccessToken)
	ctx.Values().Set("userID", claims.ID)
	ctx.Values().Set("isStaff", claims.IsStaff)
	ctx.Next()
}

// StaffOnlyMiddleware rejects callers without the staff flag.
func StaffOnlyMiddleware(ctx iris.Context) {
	claims := jwt.Get(ctx).(*AccessToken)
	if !claims.IsStaff {
		ctx.StatusCode(iris.StatusForbidden)
		ctx.JSON(iris.Map{"error": "forbidden", "message": "staff access required"})
		return
	}
	ctx.Values().Set("userID", claims.ID)
	ctx.Values().Set("isStaff", claims.IsStaff)
	ctx.Next()
}

// CurrentPrincipal builds the access-control principal for the request.
// Routes without a token verifier produce an anonymous principal.
func CurrentPrincipal(ctx iris.Context) access.Principal {
	v := ctx.Values().Get("userID")
	if v == nil {
		return access.Principal{}
	}
	id, ok := v.(uint)
	if !ok {
		return access.Principal{}
	}
	isStaff, _ := ctx.Values().Get("isStaff").(bool)
	return access.Principal{ID: id, Authenticated: true, IsStaff: isStaff}
}
