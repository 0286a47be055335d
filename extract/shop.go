package extract

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/railspeak/railspeak/host"
	"github.com/railspeak/railspeak/introspect"
	"github.com/railspeak/railspeak/locate"
	"github.com/railspeak/railspeak/markup"
)

// ShopGoods describes purchasable wares: cards, relics, and enhancers sold
// by a merchant. The ware is reached through a nested reward-state object
// and dispatched by its runtime type.
type ShopGoods struct{}

// Name implements Extractor.
func (ShopGoods) Name() string { return "shop-goods" }

// TryExtract implements Extractor.
func (ShopGoods) TryExtract(n host.Node, ctx *Context) (string, bool) {
	itemNode, c, ok := locate.FindAncestorCapability(n, "shopitem", 3)
	if !ok {
		itemNode, c, ok = locate.FindAncestorCapability(n, "merchantgood", 3)
	}
	if !ok {
		return "", false
	}
	reward, found := introspect.Read(c.Handle(), "rewardState", "reward", "GetReward")
	if !found || reward == nil {
		return "", false
	}
	text := describeReward(reward, ctx)
	if text == "" {
		return "", false
	}
	if price, hasPrice := priceOf(itemNode); hasPrice {
		text = strings.TrimSuffix(text, ".") + fmt.Sprintf(". Price: %d gold.", price)
	}
	return text, true
}

// describeReward dispatches on the reward-state's runtime type name.
func describeReward(reward any, ctx *Context) string {
	kind := strings.ToLower(reflect.TypeOf(reward).String())
	switch {
	case strings.Contains(kind, "card"):
		return DescribeCardState(cardState(reward), ctx)
	case strings.Contains(kind, "relic"):
		return describeRelicState(reward, ctx)
	case strings.Contains(kind, "enhancer"), strings.Contains(kind, "upgrade"):
		name, _ := readText(reward, "title", "name")
		effect, _ := readText(reward, "effect", "description", "upgradeDescription")
		return sentence(ctx.Speakable(name)+" (Upgrade)", ctx.Annotate(ctx.Speakable(effect)))
	default:
		name, found := readText(reward, "title", "name")
		if !found {
			return ""
		}
		desc, _ := readText(reward, "description")
		return sentence(ctx.Speakable(name), ctx.Speakable(desc))
	}
}

// priceOf reads the cost off the nearest buy-control capability.
func priceOf(n host.Node) (int, bool) {
	for _, typeName := range []string{"costprovider", "buybutton", "purchasebutton"} {
		if _, c, ok := locate.FindAncestorCapability(n, typeName, 3); ok {
			if price, found := introspect.ReadInt(c.Handle(), "cost", "price", "GetPrice"); found {
				return price, true
			}
		}
	}
	return 0, false
}

// shopServiceNames maps literal name fragments to spoken service labels.
var shopServiceNames = []struct {
	fragment string
	label    string
}{
	{"upgrade", "Upgrade a card"},
	{"purge", "Remove a card from your deck"},
	{"remove", "Remove a card from your deck"},
	{"reroll", "Reroll the shop's wares"},
	{"heal", "Restore your champion's health"},
}

// ShopService describes merchant services: upgrade, purge, reroll, heal.
// Identification tries literal name heuristics first, then an indexed
// lookup into the shop's source data, then a per-type display name.
type ShopService struct{}

// Name implements Extractor.
func (ShopService) Name() string { return "shop-service" }

// TryExtract implements Extractor.
func (ShopService) TryExtract(n host.Node, ctx *Context) (string, bool) {
	serviceNode, c, ok := locate.FindAncestorCapability(n, "shopservice", 3)
	if !ok {
		return "", false
	}
	label := serviceLabel(serviceNode, c.Handle(), ctx)
	if label == "" {
		label = markup.CleanName(serviceNode.Name())
	}
	if price, hasPrice := priceOf(serviceNode); hasPrice {
		return sentence(label, fmt.Sprintf("Price: %d gold", price)), true
	}
	return sentence(label), true
}

func serviceLabel(n host.Node, handle any, ctx *Context) string {
	name := strings.ToLower(n.Name())
	for _, svc := range shopServiceNames {
		if strings.Contains(name, svc.fragment) {
			return svc.label
		}
	}
	// Indexed lookup against the shop's source data list.
	if _, shopCap, ok := locate.FindAncestorCapability(n, "shopscreen", 5); ok {
		if services, found := introspect.ReadSlice(shopCap.Handle(), "services", "serviceData"); found {
			if idx, hasIdx := introspect.ReadInt(handle, "index", "serviceIndex"); hasIdx && idx >= 0 && idx < len(services) {
				if text, hasText := readText(services[idx], "title", "name", "displayName"); hasText {
					return ctx.Speakable(text)
				}
			}
		}
	}
	// Generic per-type display name as last resort.
	if kind, found := readText(handle, "serviceType", "type"); found {
		return ctx.Speakable(kind)
	}
	return ""
}
