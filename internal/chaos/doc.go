// Package chaos derives deterministic keystreams from the logistic
// map and provides tools for judging the quality of a chosen
// parameter.
//
//   - [GenerateKeys]: keystream of bytes from a (seed, r) pair
//   - [Lyapunov]: Lyapunov exponent of the map at a given r
//   - [Bifurcation]: parameter sweep of settled orbit values
//   - [Sensitivity]: keystream divergence between nearby seeds
//
// # Security
//
// The keystream is chaotic, not cryptographically random. XOR with a
// stream reproducible from a small (seed, r) pair is trivially broken
// under known-plaintext or key-reuse conditions. The package exists
// for reproducible image obfuscation, not confidentiality.
//
// # Chaos Detection
//
// A positive Lyapunov exponent indicates chaotic dynamics:
//
//	lambda, _ := chaos.Lyapunov(seed, r, 10000)
//	if lambda > 0 {
//	    // keystream has sensitive dependence on the seed
//	}
package chaos
