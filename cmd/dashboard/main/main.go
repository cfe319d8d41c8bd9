//go:build lambda
// +build lambda

package main

import (
	"context"

	"github.com/abstraxion/abstraxion-dashboard/apps/dashboard/server"
	"github.com/abstraxion/abstraxion-dashboard/libs/go/logger"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/davecgh/go-spew/spew"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// @title           Abstraxion Dashboard API
// @version         1.0
// @description     Wallet connection and grant dashboard for XION smart accounts

// @BasePath  /

var ginLambda *ginadapter.GinLambda

func init() {
	r := gin.New()
	r.Use(gin.Recovery())

	// Initializes the logger once STAGE is known
	server.InitializeHandlers()
	server.InitializeRoutes(r)

	ginLambda = ginadapter.New(r)
}

// Handler proxies API Gateway requests into the gin router. The request dump
// is only built when debug logging is enabled.
func Handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	if ce := logger.Log.Check(zap.DebugLevel, "Received Lambda request"); ce != nil {
		ce.Write(
			zap.String("path", req.Path),
			zap.String("request_id", req.RequestContext.RequestID),
			zap.String("request", spew.Sdump(req)),
		)
	}

	return ginLambda.ProxyWithContext(ctx, req)
}

func main() {
	defer logger.Sync()

	// The runtime sends SIGTERM before shutting the environment down
	lambda.StartWithOptions(Handler, lambda.WithEnableSIGTERM(func() {
		server.Shutdown()
		_ = logger.Sync()
	}))
}
