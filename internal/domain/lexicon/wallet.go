package lexicon

// WalletPreset describes a wallet created for every new user.
type WalletPreset struct {
	Name       string
	ColorStart string
	ColorEnd   string
	Icon       string
}

// DefaultWallets are seeded the first time a user lists wallets.
var DefaultWallets = []WalletPreset{
	{Name: "BCA", ColorStart: "#005C97", ColorEnd: "#363795", Icon: "🏦"},
	{Name: "GoPay", ColorStart: "#00B4DB", ColorEnd: "#0083B0", Icon: "📱"},
	{Name: "OVO", ColorStart: "#8E2DE2", ColorEnd: "#4A00E0", Icon: "💎"},
	{Name: DefaultWallet, ColorStart: "#11998e", ColorEnd: "#38ef7d", Icon: "💵"},
}
