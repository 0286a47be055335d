package extract

import (
	"strings"
	"testing"

	"github.com/railspeak/railspeak/host/fake"
)

type cardReward struct {
	CardState map[string]any
}

type relicReward struct {
	Title       string
	Description string
}

type shopItem struct {
	RewardState any
}

type costProvider struct {
	Cost int
}

func TestShopGoods_CardWithPrice(t *testing.T) {
	item := fake.NewNode("ShopSlot",
		fake.WithNamedCapability("ShopItem", &shopItem{
			RewardState: &cardReward{CardState: firestormState()},
		}),
		fake.WithNamedCapability("CostProvider", &costProvider{Cost: 95}))

	got, ok := ShopGoods{}.TryExtract(item, newTestContext())
	if !ok {
		t.Fatalf("expected shop item to match")
	}
	if !strings.Contains(got, "Firestorm") {
		t.Fatalf("expected card description, got %q", got)
	}
	if !strings.HasSuffix(got, "Price: 95 gold.") {
		t.Fatalf("expected price suffix, got %q", got)
	}
}

func TestShopGoods_Relic(t *testing.T) {
	item := fake.NewNode("ShopSlot",
		fake.WithNamedCapability("MerchantGood", &shopItem{
			RewardState: &relicReward{Title: "Winged Boots", Description: "Gain Quick."},
		}))

	got, ok := ShopGoods{}.TryExtract(item, newTestContext())
	if !ok {
		t.Fatalf("expected merchant good to match")
	}
	if !strings.Contains(got, "Winged Boots (Relic)") {
		t.Fatalf("expected relic label, got %q", got)
	}
}

func TestShopGoods_DeclinesWithoutReward(t *testing.T) {
	item := fake.NewNode("ShopSlot",
		fake.WithNamedCapability("ShopItem", &shopItem{}))
	if _, ok := (ShopGoods{}).TryExtract(item, newTestContext()); ok {
		t.Fatalf("expected empty slot to decline")
	}
}

type shopService struct {
	Index int
}

func TestShopService_LiteralName(t *testing.T) {
	svc := fake.NewNode("PurgeServiceButton",
		fake.WithNamedCapability("ShopService", &shopService{}))

	got, ok := ShopService{}.TryExtract(svc, newTestContext())
	if !ok || got != "Remove a card from your deck." {
		t.Fatalf("expected literal service label, got %q (ok=%v)", got, ok)
	}
}

func TestShopService_IndexedLookup(t *testing.T) {
	svc := fake.NewNode("ServiceSlot2",
		fake.WithNamedCapability("ShopService", &shopService{Index: 1}))
	screen := map[string]any{
		"services": []any{
			map[string]any{"title": "Sharpen"},
			map[string]any{"title": "Mend"},
		},
	}
	fake.NewNode("ShopScreenRoot",
		fake.WithNamedCapability("ShopScreen", screen),
		fake.WithChildren(svc))

	got, ok := ShopService{}.TryExtract(svc, newTestContext())
	if !ok || got != "Mend." {
		t.Fatalf("expected indexed service title, got %q (ok=%v)", got, ok)
	}
}

func TestRelic_Focused(t *testing.T) {
	node := fake.NewNode("RelicSlot",
		fake.WithNamedCapability("RelicUI", &relicReward{
			Title:       "Ember Cache",
			Description: "Start each battle with 1 extra ember.",
		}))

	got, ok := Relic{}.TryExtract(node, newTestContext())
	if !ok || !strings.HasPrefix(got, "Ember Cache (Relic). ") {
		t.Fatalf("expected relic description, got %q (ok=%v)", got, ok)
	}
}
