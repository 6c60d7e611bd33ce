package searcher

import (
	"errors"
	"fmt"
	"time"

	"cannon/game"
)

var ErrInvalidConfig = errors.New("invalid search config")

// Keys of the map produced by ToMap and read by FromMap.
const (
	keyWeights         = "weights"
	keyDepth           = "depth"
	keyMaxDepth        = "max_depth"
	keyTimeLimit       = "time_limit" // seconds
	keyFailHard        = "fail_hard"
	keyRefreshTT       = "refresh_tt"
	keyQuiescenceDepth = "quiescence_depth"
)

// ToMap exports the search settings for an external persistence layer.
func (ab *AlphaBeta) ToMap() map[string]any {
	weights := make([]float64, len(ab.weights))
	copy(weights, ab.weights[:])
	return map[string]any{
		keyWeights:         weights,
		keyDepth:           ab.depth,
		keyMaxDepth:        ab.maxDepth,
		keyTimeLimit:       ab.timeLimit.Seconds(),
		keyFailHard:        ab.failHard,
		keyRefreshTT:       ab.refreshTT,
		keyQuiescenceDepth: ab.quiescenceDepth,
	}
}

// FromMap builds a search for side from settings exported by ToMap or read
// from a config file. Missing keys keep their defaults; extra options are
// applied after the map.
func FromMap(g *game.Game, side game.Side, m map[string]any, extra ...Option) (*AlphaBeta, error) {
	var options []Option
	depth, maxDepth := DefaultDepth, 0

	for key, raw := range m {
		switch key {
		case keyWeights:
			w, err := toWeights(raw)
			if err != nil {
				return nil, err
			}
			options = append(options, WithWeights(w))
		case keyDepth:
			v, err := toInt(key, raw)
			if err != nil {
				return nil, err
			}
			if v < 1 {
				return nil, fmt.Errorf("%s must be at least 1, got %d: %w", key, v, ErrInvalidConfig)
			}
			depth = v
		case keyMaxDepth:
			v, err := toInt(key, raw)
			if err != nil {
				return nil, err
			}
			if v < 0 {
				return nil, fmt.Errorf("%s must not be negative, got %d: %w", key, v, ErrInvalidConfig)
			}
			maxDepth = v
		case keyTimeLimit:
			v, err := toFloat(key, raw)
			if err != nil {
				return nil, err
			}
			if v < 0 {
				return nil, fmt.Errorf("%s must not be negative, got %v: %w", key, v, ErrInvalidConfig)
			}
			options = append(options, WithTimeLimit(time.Duration(v*float64(time.Second))))
		case keyFailHard:
			v, err := toBool(key, raw)
			if err != nil {
				return nil, err
			}
			if v {
				options = append(options, WithFailHard())
			}
		case keyRefreshTT:
			v, err := toBool(key, raw)
			if err != nil {
				return nil, err
			}
			options = append(options, WithRefreshTT(v))
		case keyQuiescenceDepth:
			v, err := toInt(key, raw)
			if err != nil {
				return nil, err
			}
			if v < 0 {
				return nil, fmt.Errorf("%s must not be negative, got %d: %w", key, v, ErrInvalidConfig)
			}
			options = append(options, WithQuiescenceDepth(v))
		default:
			return nil, fmt.Errorf("unknown key %q: %w", key, ErrInvalidConfig)
		}
	}
	if maxDepth != 0 && maxDepth < depth {
		return nil, fmt.Errorf("%s %d is below %s %d: %w", keyMaxDepth, maxDepth, keyDepth, depth, ErrInvalidConfig)
	}

	options = append(options, WithDepth(depth), WithMaxDepth(maxDepth))
	return NewAlphaBeta(g, side, append(options, extra...)...), nil
}

func toWeights(raw any) (game.Weights, error) {
	var w game.Weights
	var values []any
	switch v := raw.(type) {
	case []float64:
		for _, f := range v {
			values = append(values, f)
		}
	case []any:
		values = v
	default:
		return w, fmt.Errorf("%s must be a list, got %T: %w", keyWeights, raw, ErrInvalidConfig)
	}
	if len(values) != game.NumFeatures {
		return w, fmt.Errorf("%s needs %d values, got %d: %w", keyWeights, game.NumFeatures, len(values), ErrInvalidConfig)
	}
	for i, value := range values {
		f, err := toFloat(keyWeights, value)
		if err != nil {
			return w, err
		}
		w[i] = f
	}
	return w, nil
}

func toFloat(key string, raw any) (float64, error) {
	switch v := raw.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	default:
		return 0, fmt.Errorf("%s must be a number, got %T: %w", key, raw, ErrInvalidConfig)
	}
}

func toInt(key string, raw any) (int, error) {
	switch v := raw.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case uint64:
		return int(v), nil
	case float64:
		if v != float64(int(v)) {
			return 0, fmt.Errorf("%s must be a whole number, got %v: %w", key, v, ErrInvalidConfig)
		}
		return int(v), nil
	default:
		return 0, fmt.Errorf("%s must be an integer, got %T: %w", key, raw, ErrInvalidConfig)
	}
}

func toBool(key string, raw any) (bool, error) {
	v, ok := raw.(bool)
	if !ok {
		return false, fmt.Errorf("%s must be a boolean, got %T: %w", key, raw, ErrInvalidConfig)
	}
	return v, nil
}
