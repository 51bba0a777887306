package domain

import (
	"errors"
	"maps"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullConfig() ConfigValues {
	return ConfigValues{
		KeyContractVersion:      "3",
		KeyContractName:         "Foo",
		KeyContractSymbol:       "FOO",
		KeyTokenBaseURI:         "ipfs://base/",
		KeyCoinContractAddress:  "0x1111111111111111111111111111111111111111",
		KeyCoinWalletAddress:    "0x2222222222222222222222222222222222222222",
		KeyERC20ContractAddress: "0x3333333333333333333333333333333333333333",
	}
}

func TestResolve(t *testing.T) {
	t.Run("basic", func(t *testing.T) {
		args, err := Resolve(VariantBasic, ConfigValues{
			KeyContractName:   "Foo",
			KeyContractSymbol: "FOO",
		})
		require.NoError(t, err)
		assert.Equal(t, ArgumentList{"Foo", "FOO"}, args)
	})

	t.Run("token with payment keeps declared order", func(t *testing.T) {
		args, err := Resolve(VariantTokenWithPayment, fullConfig())
		require.NoError(t, err)
		assert.Equal(t, ArgumentList{
			"Foo",
			"FOO",
			"ipfs://base/",
			"0x1111111111111111111111111111111111111111",
			"0x2222222222222222222222222222222222222222",
		}, args)
	})

	t.Run("versioned token puts version first", func(t *testing.T) {
		args, err := Resolve(VariantVersionedToken, fullConfig())
		require.NoError(t, err)
		assert.Equal(t, ArgumentList{
			"3",
			"Foo",
			"FOO",
			"ipfs://base/",
			"0x3333333333333333333333333333333333333333",
		}, args)
	})

	t.Run("length matches parameter count for every variant", func(t *testing.T) {
		for _, spec := range DefaultRegistry().Variants() {
			args, err := Resolve(spec.Variant, fullConfig())
			require.NoError(t, err, spec.Variant)
			assert.Len(t, args, spec.ParamCount(), spec.Variant)
		}
	})

	t.Run("values are passed through untouched", func(t *testing.T) {
		args, err := Resolve(VariantBasic, ConfigValues{
			KeyContractName:   "  spaced name ",
			KeyContractSymbol: "0x00",
		})
		require.NoError(t, err)
		assert.Equal(t, ArgumentList{"  spaced name ", "0x00"}, args)
	})
}

func TestResolveErrors(t *testing.T) {
	t.Run("missing erc20 address", func(t *testing.T) {
		cfg := fullConfig()
		delete(cfg, KeyERC20ContractAddress)

		args, err := Resolve(VariantVersionedToken, cfg)
		require.Error(t, err)
		assert.Nil(t, args)
		assert.True(t, errors.Is(err, ErrMissingConfigValue))

		var missing MissingConfigValueError
		require.True(t, errors.As(err, &missing))
		assert.Equal(t, KeyERC20ContractAddress, missing.Key)
		assert.Equal(t, VariantVersionedToken, missing.Variant)
	})

	t.Run("empty value counts as missing", func(t *testing.T) {
		_, err := Resolve(VariantBasic, ConfigValues{
			KeyContractName:   "Foo",
			KeyContractSymbol: "",
		})
		var missing MissingConfigValueError
		require.True(t, errors.As(err, &missing))
		assert.Equal(t, KeyContractSymbol, missing.Key)
	})

	t.Run("first missing key in declared order is reported", func(t *testing.T) {
		_, err := Resolve(VariantTokenWithPayment, ConfigValues{KeyContractName: "Foo"})
		var missing MissingConfigValueError
		require.True(t, errors.As(err, &missing))
		assert.Equal(t, KeyContractSymbol, missing.Key)
	})

	t.Run("unknown variant", func(t *testing.T) {
		args, err := Resolve(ContractVariant("Mystery"), fullConfig())
		assert.Nil(t, args)
		assert.True(t, errors.Is(err, ErrUnknownVariant))

		var unknown UnknownVariantError
		require.True(t, errors.As(err, &unknown))
		assert.Equal(t, "Mystery", unknown.Tag)
	})
}

func TestResolveDoesNotMutateInput(t *testing.T) {
	cfg := fullConfig()
	cfg["UNRELATED"] = "x"
	before := maps.Clone(cfg)

	_, err := Resolve(VariantTokenWithPayment, cfg)
	require.NoError(t, err)
	assert.Equal(t, before, cfg)

	delete(cfg, KeyCoinWalletAddress)
	before = maps.Clone(cfg)
	_, err = Resolve(VariantTokenWithPayment, cfg)
	require.Error(t, err)
	assert.Equal(t, before, cfg)
}

func TestMissingKeys(t *testing.T) {
	spec, err := DefaultRegistry().Lookup("TokenWithPayment")
	require.NoError(t, err)

	missing := MissingKeys(spec, ConfigValues{KeyContractName: "Foo", KeyTokenBaseURI: ""})
	assert.Equal(t, []string{
		KeyContractSymbol,
		KeyTokenBaseURI,
		KeyCoinContractAddress,
		KeyCoinWalletAddress,
	}, missing)
}
