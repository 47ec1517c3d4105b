/* cmd/generate.go */

package cmd

import (
	"errors"
	"strconv"

	cerr "github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"

	"github.com/CodeMonkeyCybersecurity/securepass/pkg/crypto"
	"github.com/CodeMonkeyCybersecurity/securepass/pkg/secpass_err"
	"github.com/CodeMonkeyCybersecurity/securepass/pkg/secpass_io"
	"github.com/CodeMonkeyCybersecurity/securepass/pkg/strength"
)

// buildOptions assembles generator options from the bound Viper
// instance, so precedence is flag > environment > default. The --no-*
// flags are exclusions, hence the negations.
func buildOptions(v *viper.Viper) crypto.Options {
	return crypto.Options{
		Length:  v.GetInt("length"),
		Upper:   !v.GetBool("no-upper"),
		Lower:   !v.GetBool("no-lower"),
		Digits:  !v.GetBool("no-numbers"),
		Symbols: !v.GetBool("no-symbols"),
	}
}

func runGenerate(rc *secpass_io.RuntimeContext, cmd *cobra.Command, args []string) error {
	logger := otelzap.Ctx(rc.Ctx)

	opts := buildOptions(vip)
	count := vip.GetInt("count")
	withHash := vip.GetBool("hash")

	logger.Info("Generating password",
		zap.Int("length", opts.Length),
		zap.Int("count", count),
		zap.String("character_types", categoryNames(opts)))

	if count < 1 {
		return secpass_err.NewExpectedError(cerr.New("count must be at least 1"))
	}

	rc.Attributes["length"] = strconv.Itoa(opts.Length)
	rc.Attributes["count"] = strconv.Itoa(count)

	for i := 0; i < count; i++ {
		password, err := crypto.Generate(opts)
		if err != nil {
			return classifyGenerateError(err)
		}

		level := strength.Assess(password)
		logger.Debug("Password generated",
			zap.String("password", crypto.Redact(password)),
			zap.String("strength", level.String()))

		renderPasswordBlock(logger, password, level)

		if withHash {
			hash, err := crypto.HashPassword(password)
			if err != nil {
				return cerr.Wrap(err, "hash generated password")
			}
			renderHashBlock(logger, hash)
		}
	}

	renderSettings(logger, opts, count)
	renderTip(logger)

	return nil
}

// classifyGenerateError marks configuration mistakes as expected user
// errors; anything else, like an entropy source failure, stays a
// system error.
func classifyGenerateError(err error) error {
	if errors.Is(err, crypto.ErrNoCategories) || errors.Is(err, crypto.ErrLengthOutOfRange) {
		return secpass_err.NewExpectedError(err)
	}
	return err
}
