// Package graphql serves the read-only dashboard statistics query.
//
// The dashboard asks for exactly the aggregates it charts:
//
//	{ stats { revenue products ordersByStatus { status count } } }
package graphql

import (
	"encoding/json"
	"net/http"
	"sort"

	"github.com/graphql-go/graphql"

	"github.com/fabiogif/moday-backoffice/app/services"
	"github.com/fabiogif/moday-backoffice/pkg/logger"
	"github.com/fabiogif/moday-backoffice/pkg/response"
)

// statusCount is one ordersByStatus entry.
type statusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

var statusCountType = graphql.NewObject(graphql.ObjectConfig{
	Name: "StatusCount",
	Fields: graphql.Fields{
		"status": &graphql.Field{Type: graphql.String},
		"count":  &graphql.Field{Type: graphql.Int},
	},
})

var statsType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Stats",
	Fields: graphql.Fields{
		"revenue":  &graphql.Field{Type: graphql.String},
		"products": &graphql.Field{Type: graphql.Int},
		"ordersByStatus": &graphql.Field{
			Type: graphql.NewList(statusCountType),
		},
	},
})

// NewSchema builds the dashboard schema around the given service.
func NewSchema(dashboard *services.DashboardService) (graphql.Schema, error) {
	rootQuery := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"stats": &graphql.Field{
				Type: statsType,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					stats, err := dashboard.Stats()
					if err != nil {
						return nil, err
					}

					byStatus := make([]statusCount, 0, len(stats.OrdersByStatus))
					for status, count := range stats.OrdersByStatus {
						byStatus = append(byStatus, statusCount{Status: status, Count: count})
					}
					sort.Slice(byStatus, func(i, j int) bool {
						return byStatus[i].Status < byStatus[j].Status
					})

					return map[string]interface{}{
						"revenue":        stats.Revenue,
						"products":       stats.Products,
						"ordersByStatus": byStatus,
					}, nil
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{Query: rootQuery})
}

// Handler returns the HTTP handler that executes dashboard queries.
// Accepts the standard {"query": "...", "variables": {...}} POST body.
func Handler() http.HandlerFunc {
	schema, err := NewSchema(services.NewDashboardService())
	if err != nil {
		logger.Error("graphql: schema build failed", "error", err)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Query     string                 `json:"query"`
			Variables map[string]interface{} `json:"variables"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Query == "" {
			response.Error(w, http.StatusBadRequest, "invalid GraphQL request body")
			return
		}

		result := graphql.Do(graphql.Params{
			Schema:         schema,
			RequestString:  body.Query,
			VariableValues: body.Variables,
			Context:        r.Context(),
		})

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(result) //nolint:errcheck
	}
}
