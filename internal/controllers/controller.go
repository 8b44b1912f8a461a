// Package controllers implements the HTTP handlers of the backend.
package controllers

import (
	"github.com/reward-network/backend/internal/rewards"
	"gorm.io/gorm"
)

// Controller bundles the database and the reward engine for the
// handlers.
type Controller struct {
	DB      *gorm.DB
	Network rewards.RewardNetwork
}
