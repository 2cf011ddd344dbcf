package report

import (
	"math/bits"

	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/quickmath/config"
	"github.com/pthm-cable/quickmath/hasher"
	"github.com/pthm-cable/quickmath/rng"
)

// PRNGRow is one line of prng.csv.
type PRNGRow struct {
	Seed      uint64  `csv:"seed"`
	Draws     int     `csv:"draws"`
	Buckets   int     `csv:"buckets"`
	ChiSquare float64 `csv:"chi_square"`
	DoF       int     `csv:"dof"`
	Mean      float64 `csv:"mean"`
	StdDev    float64 `csv:"std_dev"`
	Min       float64 `csv:"min"`
	Max       float64 `csv:"max"`
	NsPerCall float64 `csv:"ns_per_call"`
}

// PRNGUniformity bins Float32 draws from a generator seeded with
// cfg.RNG.Seed and compares the histogram with a flat one.
func PRNGUniformity(cfg *config.Config, perf *PerfCollector) PRNGRow {
	n, buckets := cfg.RNG.Draws, cfg.RNG.Buckets

	r := rng.New(cfg.RNG.Seed)
	draws := make([]float64, n)
	perf.StartPhase("rng/float32")
	for i := range draws {
		draws[i] = float64(r.Float32())
	}
	perf.EndPhase(n)

	obs := make([]float64, buckets)
	lo, hi := draws[0], draws[0]
	for _, d := range draws {
		b := int(d * float64(buckets))
		if b == buckets {
			b-- // Float32 includes 1.0
		}
		obs[b]++
		lo = min(lo, d)
		hi = max(hi, d)
	}
	exp := make([]float64, buckets)
	for i := range exp {
		exp[i] = float64(n) / float64(buckets)
	}

	mean, std := stat.MeanStdDev(draws, nil)
	return PRNGRow{
		Seed:      cfg.RNG.Seed,
		Draws:     n,
		Buckets:   buckets,
		ChiSquare: stat.ChiSquare(obs, exp),
		DoF:       buckets - 1,
		Mean:      mean,
		StdDev:    std,
		Min:       lo,
		Max:       hi,
		NsPerCall: perf.NsPerCall("rng/float32"),
	}
}

// HashRow is one line of hash.csv.
type HashRow struct {
	Algorithm  string  `csv:"algorithm"`
	KeyBits    int     `csv:"key_bits"`
	Keys       int     `csv:"keys"`
	Buckets    int     `csv:"buckets"`
	ChiSquare  float64 `csv:"chi_square"`
	DoF        int     `csv:"dof"`
	Collisions int     `csv:"collisions"`
	Avalanche  float64 `csv:"avalanche"` // Mean fraction of output bits flipped per input bit flip
	NsPerCall  float64 `csv:"ns_per_call"`
}

var keyWidths = [...]int{8, 16, 32, 64}

// avalancheKeys bounds the keys used for the avalanche estimate.
const avalancheKeys = 256

// hashKey hashes the low width bits of k through the width-dispatching entry.
func hashKey(h hasher.Hasher64, seed uint64, width int, k uint64) uint64 {
	switch width {
	case 8:
		return hasher.Hash(h, seed, uint8(k))
	case 16:
		return hasher.Hash(h, seed, uint16(k))
	case 32:
		return hasher.Hash(h, seed, uint32(k))
	default:
		return hasher.Hash(h, seed, k)
	}
}

// HashDistribution hashes sequential keys of every width with every
// configured family and reports bucket uniformity, output collisions and
// avalanche.
func HashDistribution(cfg *config.Config, perf *PerfCollector) []HashRow {
	var rows []HashRow
	seed := cfg.Hash.Seed
	buckets := uint64(cfg.Hash.Buckets)

	for _, alg := range cfg.Derived.Algorithms {
		h := alg.Hasher()
		outBits := alg.OutputBits()

		for _, width := range keyWidths {
			n := cfg.Hash.Keys
			if width < 64 && n > 1<<width {
				n = 1 << width
			}

			hashes := make([]uint64, n)
			phase := alg.String() + "/" + keyLabel(width)
			perf.StartPhase(phase)
			for k := range hashes {
				hashes[k] = hashKey(h, seed, width, uint64(k))
			}
			perf.EndPhase(n)

			obs := make([]float64, buckets)
			seen := make(map[uint64]struct{}, n)
			for _, v := range hashes {
				obs[v%buckets]++
				seen[v] = struct{}{}
			}
			exp := make([]float64, buckets)
			for i := range exp {
				exp[i] = float64(n) / float64(buckets)
			}

			var flipped, flips int
			for k := 0; k < min(n, avalancheKeys); k++ {
				for b := 0; b < width; b++ {
					other := hashKey(h, seed, width, uint64(k)^1<<b)
					flipped += bits.OnesCount64(hashes[k] ^ other)
					flips++
				}
			}

			rows = append(rows, HashRow{
				Algorithm:  alg.String(),
				KeyBits:    width,
				Keys:       n,
				Buckets:    int(buckets),
				ChiSquare:  stat.ChiSquare(obs, exp),
				DoF:        int(buckets) - 1,
				Collisions: n - len(seen),
				Avalanche:  float64(flipped) / float64(flips) / float64(outBits),
				NsPerCall:  perf.NsPerCall(phase),
			})
		}
	}
	return rows
}

func keyLabel(v int) string {
	switch v {
	case 8:
		return "u8"
	case 16:
		return "u16"
	case 32:
		return "u32"
	default:
		return "u64"
	}
}
