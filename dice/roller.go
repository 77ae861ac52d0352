// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package dice provides dice-rolling primitives for the engine: a Roller
// interface with crypto-random and seeded implementations, dice-pool
// notation, and a mock for deterministic tests.
package dice

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Roller is the interface for random number generation used throughout the
// engine. CryptoRoller is safe for concurrent use; SeededRoller and
// MockRoller keep unsynchronised state and are not.
//
//go:generate mockgen -destination=mock/mock_roller.go -package=mock_dice github.com/duskvault/monsterai/dice Roller
type Roller interface {
	// Roll returns a random number from 1 to size (inclusive).
	Roll(size int) (int, error)

	// RollN rolls count dice of the given size, returning each result.
	RollN(count, size int) ([]int, error)

	// Randint0 returns a uniform value in [0, n). Matches the original's
	// randint0 primitive used pervasively by the spell filter and
	// blow dispatcher for probability checks.
	Randint0(n int) (int, error)

	// OneIn reports true with probability 1/n, matching the original's
	// one_in_ primitive.
	OneIn(n int) (bool, error)
}

// CryptoRoller implements Roller using crypto/rand. This is the engine's
// production default when a host does not need reproducible turns.
type CryptoRoller struct{}

// Roll returns a cryptographically secure random number from 1 to size.
func (c *CryptoRoller) Roll(size int) (int, error) {
	if size <= 0 {
		return 0, fmt.Errorf("dice: invalid die size %d", size)
	}
	n, err := rand.Int(rand.Reader, big.NewInt(int64(size)))
	if err != nil {
		return 0, fmt.Errorf("dice: crypto/rand error: %w", err)
	}
	return int(n.Int64()) + 1, nil
}

// RollN rolls multiple dice using crypto/rand.
func (c *CryptoRoller) RollN(count, size int) ([]int, error) {
	if size <= 0 {
		return nil, fmt.Errorf("dice: invalid die size %d", size)
	}
	if count < 0 {
		return nil, fmt.Errorf("dice: invalid die count %d", count)
	}
	results := make([]int, count)
	for i := 0; i < count; i++ {
		roll, err := c.Roll(size)
		if err != nil {
			return nil, err
		}
		results[i] = roll
	}
	return results, nil
}

// Randint0 returns a uniform value in [0, n).
func (c *CryptoRoller) Randint0(n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("dice: invalid bound %d", n)
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("dice: crypto/rand error: %w", err)
	}
	return int(v.Int64()), nil
}

// OneIn reports true with probability 1/n.
func (c *CryptoRoller) OneIn(n int) (bool, error) {
	if n <= 1 {
		return true, nil
	}
	v, err := c.Randint0(n)
	if err != nil {
		return false, err
	}
	return v == 0, nil
}

// DefaultRoller is the default roller using crypto/rand.
var DefaultRoller Roller = &CryptoRoller{}

// SetDefaultRoller allows changing the default roller (primarily for
// testing). Not safe for concurrent use with other dice operations.
func SetDefaultRoller(r Roller) {
	DefaultRoller = r
}
