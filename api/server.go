package api

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/gin-gonic/gin"
	"github.com/linikers/rocketstar/api/controllers"
	"github.com/linikers/rocketstar/api/transport"
	"github.com/linikers/rocketstar/logging"
	"github.com/linikers/rocketstar/qrauth"
	"github.com/linikers/rocketstar/scoring"
	"github.com/linikers/rocketstar/storage"
)

type Server struct {
	config *Config
}

func NewServer(config *Config) *Server {
	return &Server{
		config: config,
	}
}

func (s *Server) Start() {
	r := transport.NewRouter(gin.DebugMode)

	competitorStorage, qrCodeStorage, judgeStorage := s.buildStorage()

	scoringService := scoring.NewService(competitorStorage, judgeStorage)
	qrService := qrauth.NewService(qrCodeStorage)

	// Register controllers
	votingController := controllers.NewVotingController(scoringService, competitorStorage)
	votingController.RegisterRoutes(r)
	competitorController := controllers.NewCompetitorMetaController(competitorStorage)
	competitorController.RegisterRoutes(r)
	judgeController := controllers.NewJudgeMetaController(judgeStorage)
	judgeController.RegisterRoutes(r)
	qrCodeController := controllers.NewQRCodeController(qrService, qrCodeStorage)
	qrCodeController.RegisterRoutes(r)

	// Do not run the lambda helper locally
	if os.Getenv("APP_ENV") == "local" {
		startLocal(r, s.config.Port)
	} else {
		startLambda(r)
	}
}

// buildStorage constructs the configured storage backend once at startup; the
// clients are passed into services rather than cached in package globals.
func (s *Server) buildStorage() (storage.CompetitorStorage, storage.QRCodeStorage, storage.JudgeStorage) {
	if s.config.Driver == "memory" {
		logging.Log.Warn("STORAGE: using in-memory driver, data will not survive restarts")
		return storage.NewMemoryCompetitorStorage(), storage.NewMemoryQRCodeStorage(), storage.NewMemoryJudgeStorage()
	}

	cfg, err := awsconfig.LoadDefaultConfig(context.Background())
	if err != nil {
		logging.Log.Errorf("failed to load AWS config: %v", err)
		panic("failed to load AWS config")
	}
	dynamoClient := dynamodb.NewFromConfig(cfg)

	competitorStorage := &storage.DynamoCompetitorStorage{
		Client:    dynamoClient,
		TableName: s.config.TableNameCompetitors,
	}
	qrCodeStorage := &storage.DynamoQRCodeStorage{
		Client:    dynamoClient,
		TableName: s.config.TableNameQRCodes,
	}
	judgeStorage := &storage.DynamoJudgeStorage{
		Client:    dynamoClient,
		TableName: s.config.TableNameJudges,
	}
	return competitorStorage, qrCodeStorage, judgeStorage
}

// startLambda sets up for AWS Lambda
func startLambda(engine *gin.Engine) {
	ginLambda := ginadapter.NewV2(engine)

	handler := func(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
		logging.Log.Infof("Lambda handler triggered on path: %s", req.RawPath)
		return ginLambda.ProxyWithContext(ctx, req)
	}

	logging.Log.Info("Starting lambda")
	lambda.Start(handler)
}

// startLocal starts a normal HTTP server on the configured port
func startLocal(engine *gin.Engine, port int) {
	logging.Log.Info(fmt.Sprintf("Starting server on http://localhost:%d", port))

	if err := engine.Run(fmt.Sprintf(":%d", port)); err != nil {
		logging.Log.Fatalf("Failed to run server: %v", err)
	}
}
