package action

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/terracoremate/hivekit/wallet"
)

// Protocol ids of the game's custom_json actions.
const (
	IDClaim     = "terracore_claim"
	IDBattle    = "terracore_battle"
	IDEquip     = "terracore_equip"
	IDUnequip   = "terracore_unequip"
	IDBuyCrate  = "terracore_buy_crate"
	IDOpenCrate = "terracore_open_crate"
)

// Memo prefixes that make contract transfers unique.
const (
	PrefixTerracore = "terracore"
	PrefixBossFight = "terracore_boss_fight"
	PrefixBuyCrate  = "tm_buy_crate"
	PrefixStake     = "stake"
)

// Token is a sidechain token symbol.
type Token string

const (
	SCRAP Token = "SCRAP"
	FLUX  Token = "FLUX"
)

// burnAccount receives tokens spent on game purchases.
const burnAccount = "null"

// CrateType is a loot crate rarity.
type CrateType string

const (
	CrateCommon    CrateType = "common"
	CrateUncommon  CrateType = "uncommon"
	CrateRare      CrateType = "rare"
	CrateEpic      CrateType = "epic"
	CrateLegendary CrateType = "legendary"
)

// UpgradeType is a player stat that scrap can raise.
type UpgradeType string

const (
	UpgradeDamage      UpgradeType = "damage"
	UpgradeDefense     UpgradeType = "defense"
	UpgradeEngineering UpgradeType = "engineering"
	UpgradeDodge       UpgradeType = "dodge"
	UpgradeCrit        UpgradeType = "crit"
	UpgradeLuck        UpgradeType = "luck"
)

// Game builds the game's actions. NewID supplies the uniqueness tokens;
// it defaults to uuid.New.
type Game struct {
	NewID func() uuid.UUID
}

// NewGame returns a Game using random UUIDs.
func NewGame() *Game { return &Game{NewID: uuid.New} }

func (g *Game) hash() string {
	if g.NewID == nil {
		return uuid.NewString()
	}
	return g.NewID().String()
}

// hashed starts a posting action whose payload begins with a "tx-hash" token.
func (g *Game) hashed(account, id string) (*Action, error) {
	params := NewParams()
	params.Add("tx-hash", g.hash())
	return BuildGenericAction(account, id, wallet.Posting, params)
}

// Battle attacks target.
func (g *Game) Battle(account, target string) (*Action, error) {
	if err := wallet.ValidateUsername(target); err != nil {
		return nil, fmt.Errorf("%w: target: %w", ErrInvalidAction, err)
	}
	a, err := g.hashed(account, IDBattle)
	if err != nil {
		return nil, err
	}
	a.Params.Add("target", target)
	return a, nil
}

// Claim withdraws amount of accrued scrap.
func (g *Game) Claim(account string, amount float64) (*Action, error) {
	if err := checkAmount(amount); err != nil {
		return nil, err
	}
	a, err := g.hashed(account, IDClaim)
	if err != nil {
		return nil, err
	}
	a.Params.Add("amount", amount)
	return a, nil
}

// Equip puts on the numbered item.
func (g *Game) Equip(account string, item uint32) (*Action, error) {
	return g.itemAction(account, IDEquip, item)
}

// Unequip takes off the numbered item.
func (g *Game) Unequip(account string, item uint32) (*Action, error) {
	return g.itemAction(account, IDUnequip, item)
}

// itemAction carries its uniqueness token in "action" rather than "tx-hash".
func (g *Game) itemAction(account, id string, item uint32) (*Action, error) {
	params := NewParams()
	params.Add("item_number", item)
	params.Add("action", id+"-"+g.hash())
	return BuildGenericAction(account, id, wallet.Posting, params)
}

// OpenCrate opens one crate of the given rarity.
func (g *Game) OpenCrate(account string, crate CrateType) (*Action, error) {
	if crate == "" {
		return nil, fmt.Errorf("%w: crate type", ErrInvalidAction)
	}
	a, err := g.hashed(account, IDOpenCrate)
	if err != nil {
		return nil, err
	}
	a.Params.Add("crate_type", strings.ToLower(string(crate)))
	a.Params.Add("owner", account)
	return a, nil
}

// BuyCrate burns scrap for a crate.
func (g *Game) BuyCrate(account string, scrap uint32) (*Action, error) {
	if scrap == 0 {
		return nil, fmt.Errorf("%w: scrap must be positive", ErrInvalidAmount)
	}
	memo := PrefixBuyCrate + "-" + g.hash()
	return tokenAction(account, "transfer", SCRAP, burnAccount, strconv.FormatUint(uint64(scrap), 10), memo)
}

// Stake locks scrap in the player's own account.
func (g *Game) Stake(account string, scrap uint32) (*Action, error) {
	if scrap == 0 {
		return nil, fmt.Errorf("%w: scrap must be positive", ErrInvalidAmount)
	}
	memo := PrefixStake + "-" + g.hash()
	return tokenAction(account, "stake", SCRAP, account, strconv.FormatUint(uint64(scrap), 10), memo)
}

// Upgrade burns scrap to raise a stat.
func (g *Game) Upgrade(account string, kind UpgradeType, scrap uint32) (*Action, error) {
	if kind == "" {
		return nil, fmt.Errorf("%w: upgrade type", ErrInvalidAction)
	}
	if scrap == 0 {
		return nil, fmt.Errorf("%w: scrap must be positive", ErrInvalidAmount)
	}
	memo := PrefixTerracore + "_" + strings.ToLower(string(kind)) + "-" + g.hash()
	return tokenAction(account, "transfer", SCRAP, burnAccount, strconv.FormatUint(uint64(scrap), 10), memo)
}

// BossFight burns flux to fight the boss of planet.
func (g *Game) BossFight(account, planet string, flux float64) (*Action, error) {
	if planet == "" {
		return nil, fmt.Errorf("%w: planet", ErrInvalidAction)
	}
	if err := checkAmount(flux); err != nil {
		return nil, err
	}
	memo := NewParams()
	memo.Add("hash", PrefixBossFight+"-"+g.hash())
	memo.Add("planet", planet)
	return tokenAction(account, "transfer", FLUX, burnAccount, decimal.NewFromFloat(flux).String(), memo)
}

// tokenAction calls the tokens contract with the standard transfer payload.
func tokenAction(account, contractAction string, symbol Token, to, quantity string, memo interface{}) (*Action, error) {
	payload := NewParams()
	payload.Add("symbol", string(symbol))
	payload.Add("to", to)
	payload.Add("quantity", quantity)
	payload.Add("memo", memo)
	return BuildContractAction(account, "tokens", contractAction, payload)
}

func checkAmount(v float64) error {
	if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidAmount, v)
	}
	return nil
}
