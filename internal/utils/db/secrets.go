package db

import (
	"context"
	"encoding/json"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

type credenciais struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func initSecretsConfig() *secretsmanager.Client {
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatal(err)
	}

	return secretsmanager.NewFromConfig(cfg)
}

// resolverCredenciais prioriza DB_USERNAME/DB_PASSWORD; na ausência, busca o
// segredo no AWS Secrets Manager (ambientes gerenciados).
func resolverCredenciais(secretID string) (string, string) {
	secretUsername := os.Getenv("DB_USERNAME")
	secretPassword := os.Getenv("DB_PASSWORD")
	if secretUsername != "" && secretPassword != "" {
		return secretUsername, secretPassword
	}

	secrets := initSecretsConfig()
	input := &secretsmanager.GetSecretValueInput{
		SecretId:     aws.String(secretID),
		VersionStage: aws.String("AWSCURRENT"),
	}

	result, err := secrets.GetSecretValue(context.TODO(), input)
	if err != nil {
		panic(err)
	}

	var secret credenciais
	if err = json.Unmarshal([]byte(*result.SecretString), &secret); err != nil {
		panic(err)
	}

	return secret.Username, secret.Password
}
