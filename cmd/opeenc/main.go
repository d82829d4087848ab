// Command opeenc encrypts a list of integer plaintexts under an
// order-preserving encryption context, printing one ciphertext per
// line. It is a thin external consumer of the ope package: all
// determinism and the encryption algorithm itself live in ope,
// sampler, hgd, and tape.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"bclo-ope/ope"
	"bclo-ope/opekey"
	"bclo-ope/prof"
	"bclo-ope/vrange"
)

func main() {
	passphrase := flag.String("passphrase", "", "passphrase to derive the OPE key from (mutually exclusive with -key-hex)")
	keyHex := flag.String("key-hex", "", "raw OPE key, hex-encoded")
	salt := flag.String("salt", "opeenc-default-salt", "salt used when deriving a key from -passphrase")
	inStart := flag.Float64("in-start", 0, "input domain lower bound")
	inEnd := flag.Float64("in-end", 1e15, "input domain upper bound")
	outStart := flag.Float64("out-start", 0, "output domain lower bound")
	outEnd := flag.Float64("out-end", 1e30, "output domain upper bound")
	plaintextsFlag := flag.String("plaintexts", "", "comma-separated integers to encrypt")
	showTimings := flag.Bool("timings", false, "print per-call timing summary to stderr")
	flag.Parse()

	if *plaintextsFlag == "" {
		log.Fatal("-plaintexts is required")
	}

	key, err := resolveKey(*passphrase, *keyHex, *salt)
	if err != nil {
		log.Fatalf("resolve key: %v", err)
	}

	inRange, err := vrange.New(*inStart, *inEnd)
	if err != nil {
		log.Fatalf("in_range: %v", err)
	}
	outRange, err := vrange.New(*outStart, *outEnd)
	if err != nil {
		log.Fatalf("out_range: %v", err)
	}

	o, err := ope.New(key, inRange, outRange)
	if err != nil {
		log.Fatalf("construct OPE context (key fingerprint %s): %v", opekey.Fingerprint(key), err)
	}

	for _, field := range strings.Split(*plaintextsFlag, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		p, err := strconv.ParseFloat(field, 64)
		if err != nil {
			log.Fatalf("invalid plaintext %q: %v", field, err)
		}

		start := time.Now()
		c, err := o.Encrypt(p)
		prof.Track(start, "cmd/opeenc.Encrypt")
		if err != nil {
			log.Fatalf("encrypt %v: %v", p, err)
		}
		fmt.Printf("%v -> %v\n", p, c)
	}

	if *showTimings {
		fmt.Fprint(flag.CommandLine.Output(), prof.Summarize(prof.SnapshotAndReset()))
	}
}

func resolveKey(passphrase, keyHex, salt string) ([]byte, error) {
	switch {
	case passphrase != "" && keyHex != "":
		return nil, fmt.Errorf("specify only one of -passphrase or -key-hex")
	case passphrase != "":
		return opekey.DeriveFromPassphrase(passphrase, salt, opekey.DefaultIterations), nil
	case keyHex != "":
		return hex.DecodeString(keyHex)
	default:
		return nil, fmt.Errorf("one of -passphrase or -key-hex is required")
	}
}
