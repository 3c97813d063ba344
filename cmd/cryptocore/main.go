// Command cryptocore lists the available schemes, runs a round-trip self test
// over each of them, and offers signing helpers for scripts.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/vaultsandbox/cryptocore"
	"github.com/vaultsandbox/cryptocore/aead"
	"github.com/vaultsandbox/cryptocore/agreement"
	"github.com/vaultsandbox/cryptocore/kdf"
	"github.com/vaultsandbox/cryptocore/kem"
	"github.com/vaultsandbox/cryptocore/signature"
)

const usage = "usage: cryptocore <schemes|selftest|keygen|sign|verify> [args]"

// Config holds the process streams so tests can replace them.
type Config struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	// Debug enables provider failure logging on Stderr.
	Debug bool
}

// DefaultConfig returns a Config bound to the process streams.
func DefaultConfig() *Config {
	return &Config{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Debug:  os.Getenv("CRYPTOCORE_DEBUG") != "",
	}
}

func run(args []string, cfg *Config) error {
	if len(args) < 2 {
		return errors.New(usage)
	}
	if cfg.Debug && cfg.Stderr != nil {
		cryptocore.SetLogger(newLogger(cfg.Stderr))
		defer cryptocore.SetLogger(nil)
	}

	switch args[1] {
	case "schemes":
		return runSchemes(cfg)
	case "selftest":
		return runSelfTest(cfg, args[2:])
	case "keygen":
		if len(args) < 3 {
			return errors.New("usage: cryptocore keygen <signature-scheme>")
		}
		return runKeygen(cfg, args[2])
	case "sign":
		if len(args) < 4 {
			return errors.New("usage: cryptocore sign <signature-scheme> <private-key> < message")
		}
		return runSign(cfg, args[2], args[3])
	case "verify":
		if len(args) < 5 {
			return errors.New("usage: cryptocore verify <signature-scheme> <public-key> <signature> < message")
		}
		return runVerify(cfg, args[2], args[3], args[4])
	default:
		return fmt.Errorf("unknown command: %s", args[1])
	}
}

func newLogger(w io.Writer) *zap.Logger {
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(w),
		zap.DebugLevel,
	)
	return zap.New(core)
}

// SchemeOutput is one entry of the schemes listing.
type SchemeOutput struct {
	Family string `json:"family"`
	Name   string `json:"name"`
	ID     string `json:"id"`
}

func listSchemes() []SchemeOutput {
	families := []struct {
		name  string
		infos []cryptocore.Info
	}{
		{"aead", aead.Schemes()},
		{"signature", signature.Schemes()},
		{"agreement", agreement.Schemes()},
		{"kem", kem.Schemes()},
		{"kdf", kdf.Schemes()},
	}

	var out []SchemeOutput
	for _, f := range families {
		for _, info := range f.infos {
			out = append(out, SchemeOutput{
				Family: f.name,
				Name:   info.Name,
				ID:     fmt.Sprintf("0x%08x", info.ID),
			})
		}
	}
	return out
}

func runSchemes(cfg *Config) error {
	return encode(cfg.Stdout, map[string][]SchemeOutput{"schemes": listSchemes()})
}

// CheckOutput is the result of one self-test check.
type CheckOutput struct {
	Scheme string `json:"scheme"`
	OK     bool   `json:"ok"`
	Error  string `json:"error,omitempty"`
}

func runSelfTest(cfg *Config, only []string) error {
	want := make(map[string]bool, len(only))
	for _, name := range only {
		want[name] = true
	}

	results := make([]CheckOutput, 0, len(checks))
	failed := 0
	for _, c := range checks {
		if len(want) > 0 && !want[c.name] {
			continue
		}
		res := CheckOutput{Scheme: c.name, OK: true}
		if err := c.run(); err != nil {
			res.OK = false
			res.Error = err.Error()
			failed++
		}
		results = append(results, res)
	}
	if len(want) > 0 && len(results) == 0 {
		return fmt.Errorf("no scheme matches %v", only)
	}

	if err := encode(cfg.Stdout, map[string][]CheckOutput{"results": results}); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d checks failed", failed, len(results))
	}
	return nil
}

// KeyPairOutput is a generated signing key pair in base64url.
type KeyPairOutput struct {
	Scheme     string `json:"scheme"`
	PublicKey  string `json:"publicKey"`
	PrivateKey string `json:"privateKey"`
}

func lookupSigner(name string) (signatureOps, error) {
	ops, ok := signers[name]
	if !ok {
		names := make([]string, 0, len(signers))
		for n := range signers {
			names = append(names, n)
		}
		sort.Strings(names)
		return nil, fmt.Errorf("unknown signature scheme %q (available: %v)", name, names)
	}
	return ops, nil
}

func runKeygen(cfg *Config, scheme string) error {
	ops, err := lookupSigner(scheme)
	if err != nil {
		return err
	}
	pub, priv, err := ops.keygen()
	if err != nil {
		return fmt.Errorf("generate key pair: %w", err)
	}
	defer cryptocore.Wipe(priv)

	return encode(cfg.Stdout, KeyPairOutput{
		Scheme:     scheme,
		PublicKey:  cryptocore.ToBase64URL(pub),
		PrivateKey: cryptocore.ToBase64URL(priv),
	})
}

func runSign(cfg *Config, scheme, privateKey string) error {
	ops, err := lookupSigner(scheme)
	if err != nil {
		return err
	}
	priv, err := cryptocore.DecodeBase64(privateKey)
	if err != nil {
		return fmt.Errorf("decode private key: %w", err)
	}
	defer cryptocore.Wipe(priv)

	msg, err := io.ReadAll(cfg.Stdin)
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}
	sig, err := ops.sign(priv, msg)
	if err != nil {
		return fmt.Errorf("sign: %w", err)
	}
	return encode(cfg.Stdout, map[string]string{"signature": sig.String()})
}

func runVerify(cfg *Config, scheme, publicKey, sigText string) error {
	ops, err := lookupSigner(scheme)
	if err != nil {
		return err
	}
	pub, err := cryptocore.DecodeBase64(publicKey)
	if err != nil {
		return fmt.Errorf("decode public key: %w", err)
	}
	sig, err := cryptocore.ParseSignature(sigText)
	if err != nil {
		return fmt.Errorf("decode signature: %w", err)
	}
	msg, err := io.ReadAll(cfg.Stdin)
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}

	err = ops.verify(pub, msg, sig)
	switch {
	case err == nil:
		return encode(cfg.Stdout, map[string]bool{"valid": true})
	case errors.Is(err, cryptocore.ErrVerification), errors.Is(err, cryptocore.ErrInvalidSignature):
		return encode(cfg.Stdout, map[string]bool{"valid": false})
	default:
		return fmt.Errorf("verify: %w", err)
	}
}

func encode(w io.Writer, v any) error {
	if err := json.NewEncoder(w).Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}

func fatal(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, format+"\n", args...)
	osExit(1)
}

var osExit = os.Exit
