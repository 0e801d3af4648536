package test

import (
	"math/rand"
	"sync"
	"time"
)

const asciiLetters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

var (
	rngMu sync.Mutex
	rng   = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// RandomASCIIString returns a pseudo-random ASCII string with a length inside
// the provided bounds.
func RandomASCIIString(minLen, maxLen int) string {
	if minLen <= 0 {
		minLen = 1
	}
	if maxLen < minLen {
		maxLen = minLen
	}
	length := minLen
	if maxLen > minLen {
		length += int(randomIntn(maxLen - minLen + 1))
	}

	buf := make([]byte, length)
	for i := range buf {
		buf[i] = asciiLetters[randomIntn(len(asciiLetters))]
	}
	return string(buf)
}

// RandomPrice returns a price with two decimal places in [0.01, max).
func RandomPrice(max float64) float64 {
	if max <= 0.01 {
		max = 1
	}
	rngMu.Lock()
	defer rngMu.Unlock()
	cents := 1 + rng.Int63n(int64(max*100)-1)
	return float64(cents) / 100
}

func randomIntn(n int) int64 {
	rngMu.Lock()
	defer rngMu.Unlock()
	return rng.Int63n(int64(n))
}
