package services

import "github.com/fabiogif/moday-backoffice/pkg/ws"

// OrderFeed is the live WebSocket feed the dashboard subscribes to.
// Order mutations publish here.
var OrderFeed = ws.NewHub()

func init() { go OrderFeed.Run() }
