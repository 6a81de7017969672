package configfile

import (
	"fmt"
	"os"
	"reflect"

	"github.com/golobby/cast"

	"github.com/dreamguest/evmgr"
)

// LoadEnv populates a Config from environment variables named by each
// field's `env` struct tag, mirroring the teacher module's env-tag
// convention (feeders/tenant_affixed_env.go) and its use of
// github.com/golobby/cast to coerce the string values os.LookupEnv
// returns into each field's concrete type. Unlike the teacher's
// TenantAffixedEnvFeeder, this loader has no prefix/suffix or tenant
// scoping: a kernel Config is one instance per Manager, not per tenant.
//
// Fields with no env tag (Logger, Allocator) are left at their
// DefaultConfig value.
func LoadEnv() (*evmgr.Config, error) {
	cfg := evmgr.DefaultConfig()
	v := reflect.ValueOf(cfg).Elem()
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		envKey := field.Tag.Get("env")
		if envKey == "" {
			continue
		}
		raw, ok := os.LookupEnv(envKey)
		if !ok {
			continue
		}

		fv := v.Field(i)
		switch fv.Kind() {
		case reflect.Int:
			n, err := cast.ToInt(raw)
			if err != nil {
				return nil, fmt.Errorf("configfile: env %s=%q: %w", envKey, raw, err)
			}
			fv.SetInt(int64(n))
		case reflect.Bool:
			b, err := cast.ToBool(raw)
			if err != nil {
				return nil, fmt.Errorf("configfile: env %s=%q: %w", envKey, raw, err)
			}
			fv.SetBool(b)
		default:
			return nil, fmt.Errorf("configfile: env %s: unsupported field kind %s", envKey, fv.Kind())
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
