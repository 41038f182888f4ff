package template

import "github.com/gridboard/gridboard/pkg/component"

// Builtin template names.
const (
	NameDefault    = "default"
	NameOperations = "operations"
	NameAnalytics  = "analytics"
	NameMinimal    = "minimal"
)

// Builtin returns a registry preloaded with the standard starter layouts.
func Builtin() *Registry {
	r := NewRegistry()
	r.Register(NameDefault, defaultLayout)
	r.Register(NameOperations, operationsLayout)
	r.Register(NameAnalytics, analyticsLayout)
	r.Register(NameMinimal, minimalLayout)
	return r
}

func interactive(kind, title string) component.Component {
	return component.Component{
		Kind:      kind,
		Title:     title,
		Draggable: true,
		Resizable: true,
		Visible:   true,
	}
}

func defaultLayout() []component.Component {
	orders := interactive(component.KindTable, "Recent Orders")
	orders.Config = map[string]any{"source": "orders", "limit": 10}

	fleet := interactive(component.KindChart, "Fleet Utilization")
	fleet.Config = map[string]any{"series": "fleet_utilization", "style": "line"}

	alerts := interactive(component.KindWidget, "Notifications")
	alerts.Config = map[string]any{"source": "notifications"}
	alerts.Size.MinHeight = 120

	eta := interactive(component.KindWidget, "ETA Overview")
	eta.Config = map[string]any{"source": "eta"}

	return []component.Component{orders, fleet, alerts, eta}
}

func operationsLayout() []component.Component {
	vehicles := interactive(component.KindTable, "Vehicles")
	vehicles.Config = map[string]any{"source": "vehicles"}
	vehicles.Size.MinWidth = 320

	incidents := interactive(component.KindWidget, "Open Incidents")
	incidents.Config = map[string]any{"source": "incidents"}

	throughput := interactive(component.KindChart, "Depot Throughput")
	throughput.Config = map[string]any{"series": "depot_throughput", "style": "bar"}

	return []component.Component{vehicles, incidents, throughput}
}

func analyticsLayout() []component.Component {
	revenue := interactive(component.KindChart, "Revenue")
	revenue.Config = map[string]any{"series": "revenue", "style": "area"}

	volume := interactive(component.KindChart, "Order Volume")
	volume.Config = map[string]any{"series": "order_volume", "style": "line"}

	breakdown := interactive(component.KindTable, "Route Breakdown")
	breakdown.Config = map[string]any{"source": "routes"}

	kpi := interactive(component.KindWidget, "KPI Summary")
	kpi.Config = map[string]any{"source": "kpi"}
	kpi.Size.MaxHeight = 160

	return []component.Component{revenue, volume, breakdown, kpi}
}

func minimalLayout() []component.Component {
	return []component.Component{
		interactive(component.KindWidget, "Overview"),
	}
}
