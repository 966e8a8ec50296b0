package core

import (
	"sync"

	"github.com/minio/blake2b-simd"
)

// Backend selects which blockCipher realizes AES4/AES10.
type Backend int

const (
	// BackendVartime is the default: a scalar T-table AES round function.
	// Fast, but not constant-time (table lookups are indexed by
	// secret-dependent bytes).
	BackendVartime Backend = iota
	// BackendConstantTime is the bitsliced backend (64-bit lanes, or
	// 32-bit on targets where that is not expected to help -- see
	// capability.go), with no secret-dependent branches or memory
	// accesses.
	BackendConstantTime
)

// adFingerprintSize is the digest size used for the AD-hash cache key.
// Any size works; 32 bytes gives a comfortably collision-resistant
// fingerprint without hashing a full 64-byte digest for every call.
const adFingerprintSize = 32

// Context holds extracted key material and is the receiver for Encrypt
// and Decrypt. It is immutable once Setup returns, except for the
// associated-data hash cache, which is guarded by a mutex so a
// Context can be shared across goroutines per spec.md §5.
type Context struct {
	tw tweak

	mu         sync.Mutex
	cacheValid bool
	cacheTau   uint32
	cacheFP    [adFingerprintSize]byte
	cacheSum   [blockSize]byte
}

// Setup extracts (I, J, L) from key, which may be any length up to 4095
// bytes, and selects the round-function backend.
func Setup(key []byte, backend Backend) *Context {
	cipher := newCipher(backend)
	I, J, L := extract(key, cipher)

	return &Context{
		tw: tweak{I: I, J: J, L: L, cipher: cipher},
	}
}

func newCipher(backend Backend) blockCipher {
	switch backend {
	case BackendConstantTime:
		if preferCT64() {
			return newCT64Cipher()
		}
		return newCT32Cipher()
	default:
		return newVartimeCipher()
	}
}

// Reset wipes the extracted key material. The Context must not be used
// afterward.
func (c *Context) Reset() {
	zero(c.tw.I[:])
	zero(c.tw.J[:])
	zero(c.tw.L[:])
	c.tw.cipher.reset()

	c.mu.Lock()
	defer c.mu.Unlock()
	c.cacheValid = false
	zero(c.cacheSum[:])
}

// Hash computes AEZ-hash for (tau, nonce, ad), using and maintaining the
// per-Context AD cache described in spec.md §4.5 and §E.2: the cache key
// is a blake2b fingerprint of (tau, ad...), not the raw AD, so repeated
// calls with identical (tau, ad) but varying nonce still recompute (the
// nonce is cheap to hash and is not part of the cached contribution),
// while identical (tau, ad) pairs skip re-hashing the AD vector.
func (c *Context) Hash(tauBits uint32, nonce []byte, ad [][]byte) [blockSize]byte {
	fp := adFingerprint(tauBits, ad)

	c.mu.Lock()
	var adSum [blockSize]byte
	if c.cacheValid && c.cacheTau == tauBits && c.cacheFP == fp {
		adSum = c.cacheSum
	} else {
		adSum = c.tw.hashAD(ad)
		c.cacheValid = true
		c.cacheTau = tauBits
		c.cacheFP = fp
		c.cacheSum = adSum
	}
	c.mu.Unlock()

	var buf, sum [blockSize]byte
	putBE32(buf[12:], tauBits)
	c.tw.e(3, 1, &buf, &sum)

	var nonceSum [blockSize]byte
	absorb(&c.tw, 4, nonce, &nonceSum)

	xorBlock(&sum, &sum, &nonceSum)
	xorBlock(&sum, &sum, &adSum)
	return sum
}

var adFingerprintCfg = &blake2b.Config{Size: adFingerprintSize}

// adFingerprint is a cheap blake2b digest of (tau, ad...), used as the
// AD-hash cache key: two calls with equal (tau, ad) collapse to the
// same fingerprint without comparing the raw AD byte-for-byte. Every
// element is length-prefixed and the vector itself is count-prefixed, so
// distinct AD vectors never collide on fingerprint: neither a differing
// veclen (ad=[{0x00}] vs ad=[{},{}]) nor a differing split of the same
// bytes across elements (["ab","c"] vs ["ab\x00c"]) can hash equal.
func adFingerprint(tauBits uint32, ad [][]byte) [adFingerprintSize]byte {
	h, err := blake2b.New(adFingerprintCfg)
	if err != nil {
		panic("aez: adFingerprint: " + err.Error())
	}
	var b [4]byte
	putBE32(b[:], tauBits)
	_, _ = h.Write(b[:])
	putBE32(b[:], uint32(len(ad)))
	_, _ = h.Write(b[:])
	for _, a := range ad {
		putBE32(b[:], uint32(len(a)))
		_, _ = h.Write(b[:])
		_, _ = h.Write(a)
	}
	var out [adFingerprintSize]byte
	copy(out[:], h.Sum(nil))
	return out
}

func putBE32(b []byte, x uint32) {
	b[0] = byte(x >> 24)
	b[1] = byte(x >> 16)
	b[2] = byte(x >> 8)
	b[3] = byte(x)
}

// PRF computes AEZ-prf(delta, tau).
func (c *Context) PRF(delta *[blockSize]byte, tau int, out []byte) {
	c.tw.prf(delta, tau, out)
}

// Encipher runs EncipherAEZcore or EncipherAEZtiny, selecting on length.
func (c *Context) Encipher(delta *[blockSize]byte, in, out []byte) {
	c.dispatch(delta, in, 0, out)
}

// Decipher runs DecipherAEZcore or DecipherAEZtiny, selecting on length.
func (c *Context) Decipher(delta *[blockSize]byte, in, out []byte) {
	c.dispatch(delta, in, 1, out)
}

func (c *Context) dispatch(delta *[blockSize]byte, in []byte, d uint, out []byte) {
	if len(in) == 0 {
		return
	}
	if len(in) < 32 {
		c.tw.tinyCipher(delta, in, d, out)
	} else {
		c.tw.coreCipher(delta, in, d, out)
	}
}
