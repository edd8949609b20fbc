package builtins

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/base64"
	"encoding/hex"
	"strconv"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/crypto/ripemd160"

	"stekk/value"
)

// registerHashing wires the Hashing word category (see SPEC_FULL.md's
// domain stack section) atop golang.org/x/crypto/bcrypt and the stdlib
// digest/encoding packages — not in spec.md's original table, added to
// exercise the teacher's crypto dependency in this domain.
func registerHashing() {
	registerPure("crypt", 2, "password cost -- hash", func(args []value.Value) ([]value.Value, bool) {
		s, ok := args[0].(value.Str)
		if !ok {
			return nil, false
		}
		costStr, ok := args[1].(value.Str)
		if !ok {
			return nil, false
		}
		cost := bcrypt.DefaultCost
		if costStr.Val != "" {
			c, err := strconv.Atoi(costStr.Val)
			if err != nil {
				return nil, false
			}
			cost = c
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(s.Val), cost)
		if err != nil {
			return nil, false
		}
		return []value.Value{value.NewStr(string(hash))}, true
	})

	registerPure("crypt_check", 2, "password hash -- 0|1", func(args []value.Value) ([]value.Value, bool) {
		pw, ok1 := args[0].(value.Str)
		hash, ok2 := args[1].(value.Str)
		if !ok1 || !ok2 {
			return nil, false
		}
		err := bcrypt.CompareHashAndPassword([]byte(hash.Val), []byte(pw.Val))
		return []value.Value{boolInt(err == nil)}, true
	})

	registerPure("md5", 1, "s -- hex", func(args []value.Value) ([]value.Value, bool) {
		s, ok := args[0].(value.Str)
		if !ok {
			return nil, false
		}
		sum := md5.Sum([]byte(s.Val))
		return []value.Value{value.NewStr(hex.EncodeToString(sum[:]))}, true
	})

	registerPure("sha1", 1, "s -- hex", func(args []value.Value) ([]value.Value, bool) {
		s, ok := args[0].(value.Str)
		if !ok {
			return nil, false
		}
		sum := sha1.Sum([]byte(s.Val))
		return []value.Value{value.NewStr(hex.EncodeToString(sum[:]))}, true
	})

	registerPure("sha256", 1, "s -- hex", func(args []value.Value) ([]value.Value, bool) {
		s, ok := args[0].(value.Str)
		if !ok {
			return nil, false
		}
		sum := sha256.Sum256([]byte(s.Val))
		return []value.Value{value.NewStr(hex.EncodeToString(sum[:]))}, true
	})

	registerPure("sha512", 1, "s -- hex", func(args []value.Value) ([]value.Value, bool) {
		s, ok := args[0].(value.Str)
		if !ok {
			return nil, false
		}
		sum := sha512.Sum512([]byte(s.Val))
		return []value.Value{value.NewStr(hex.EncodeToString(sum[:]))}, true
	})

	registerPure("ripemd160", 1, "s -- hex", func(args []value.Value) ([]value.Value, bool) {
		s, ok := args[0].(value.Str)
		if !ok {
			return nil, false
		}
		h := ripemd160.New()
		h.Write([]byte(s.Val))
		return []value.Value{value.NewStr(hex.EncodeToString(h.Sum(nil)))}, true
	})

	registerPure("b64encode", 1, "s -- b64", func(args []value.Value) ([]value.Value, bool) {
		s, ok := args[0].(value.Str)
		if !ok {
			return nil, false
		}
		return []value.Value{value.NewStr(base64.StdEncoding.EncodeToString([]byte(s.Val)))}, true
	})

	registerPure("b64decode", 1, "b64 -- s|$E", func(args []value.Value) ([]value.Value, bool) {
		s, ok := args[0].(value.Str)
		if !ok {
			return nil, false
		}
		out, err := base64.StdEncoding.DecodeString(s.Val)
		if err != nil {
			return []value.Value{value.E}, true
		}
		return []value.Value{value.NewStr(string(out))}, true
	})

	registerPure("hexencode", 1, "s -- hex", func(args []value.Value) ([]value.Value, bool) {
		s, ok := args[0].(value.Str)
		if !ok {
			return nil, false
		}
		return []value.Value{value.NewStr(hex.EncodeToString([]byte(s.Val)))}, true
	})

	registerPure("hexdecode", 1, "hex -- s|$E", func(args []value.Value) ([]value.Value, bool) {
		s, ok := args[0].(value.Str)
		if !ok {
			return nil, false
		}
		out, err := hex.DecodeString(s.Val)
		if err != nil {
			return []value.Value{value.E}, true
		}
		return []value.Value{value.NewStr(string(out))}, true
	})
}
