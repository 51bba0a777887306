package domain

// ContractVariant identifies which constructor shape a deployment uses
type ContractVariant string

const (
	// VariantBasic deploys with (name, symbol)
	VariantBasic ContractVariant = "Basic"

	// VariantTokenWithPayment deploys with (name, symbol, baseUri, coinContractAddress, coinWalletAddress)
	VariantTokenWithPayment ContractVariant = "TokenWithPayment"

	// VariantVersionedToken deploys with (version, name, symbol, baseUri, erc20ContractAddress)
	VariantVersionedToken ContractVariant = "VersionedToken"
)

// Recognized configuration keys
const (
	KeyContractVersion      = "CONTRACT_VERSION"
	KeyContractName         = "CONTRACT_NAME"
	KeyContractSymbol       = "CONTRACT_SYMBOL"
	KeyTokenBaseURI         = "TOKEN_BASE_URI"
	KeyCoinContractAddress  = "COIN_CONTRACT_ADDRESS"
	KeyCoinWalletAddress    = "COIN_WALLET_ADDRESS"
	KeyERC20ContractAddress = "ERC20_CONTRACT_ADDRESS"
)

func (v ContractVariant) String() string {
	return string(v)
}

// ConfigValues is a flat key-value view of the deployment configuration.
// Resolution only reads from it.
type ConfigValues map[string]string

// ArgumentList is the positional constructor argument list for one deployment
type ArgumentList []string

// VariantSpec describes a constructor shape: the artifact deployed by default
// and the configuration keys feeding its parameters, in constructor order.
type VariantSpec struct {
	Variant     ContractVariant `json:"variant"`
	Artifact    string          `json:"artifact"`
	Keys        []string        `json:"keys"`
	Description string          `json:"description,omitempty"`
	BuiltIn     bool            `json:"builtIn"`
}

// ParamCount returns the number of constructor parameters of the variant
func (s VariantSpec) ParamCount() int {
	return len(s.Keys)
}

func builtinVariants() []VariantSpec {
	return []VariantSpec{
		{
			Variant:     VariantBasic,
			Artifact:    "NFTV1",
			Keys:        []string{KeyContractName, KeyContractSymbol},
			Description: "name and symbol only",
			BuiltIn:     true,
		},
		{
			Variant:  VariantTokenWithPayment,
			Artifact: "NFTV2",
			Keys: []string{
				KeyContractName,
				KeyContractSymbol,
				KeyTokenBaseURI,
				KeyCoinContractAddress,
				KeyCoinWalletAddress,
			},
			Description: "token with base URI and coin payment",
			BuiltIn:     true,
		},
		{
			Variant:  VariantVersionedToken,
			Artifact: "NFTV3",
			Keys: []string{
				KeyContractVersion,
				KeyContractName,
				KeyContractSymbol,
				KeyTokenBaseURI,
				KeyERC20ContractAddress,
			},
			Description: "versioned token paid in an ERC20",
			BuiltIn:     true,
		},
	}
}
