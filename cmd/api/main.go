// Package main Burger Rewards API
//
// Burger Rewards is the loyalty service behind the storefront: a daily
// prize wheel that issues discount coupons, coupon redemption with
// quote and commit phases, and order placement that spends coupons
// atomically.
//
//	Schemes: http, https
//	Host: localhost:8080
//	BasePath: /api/v1
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
//	Security:
//	- bearer
package main

import (
	"context"

	_ "github.com/burgerspot/rewards/docs"
	"github.com/burgerspot/rewards/internal/app"
)

// @title Burger Rewards API Service
// @version 1.0
// @description Daily reward and coupon redemption service for the burger storefront.

// @contact.name API Support

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	ctx := context.Background()
	application := app.NewApplication(ctx)
	application.Setup()
}
