package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/financas-io/api-financas/internal/auth"
	"github.com/financas-io/api-financas/internal/banco"
	"github.com/financas-io/api-financas/internal/categoria"
	"github.com/financas-io/api-financas/internal/debito"
	"github.com/financas-io/api-financas/internal/metodopagamento"
	"github.com/financas-io/api-financas/internal/usuario"
	"github.com/financas-io/api-financas/internal/utils/db"
	"github.com/financas-io/api-financas/internal/workspace"
)

func main() {
	// .env é opcional; em produção as variáveis já vêm do ambiente.
	_ = godotenv.Load()

	conn, err := db.GetDB()
	if err != nil {
		log.Fatal("Erro ao conectar no banco:", err)
	}

	// AutoMigrate para todos os modelos
	if err := conn.AutoMigrate(
		&usuario.Usuario{},
		&workspace.Workspace{},
		&workspace.Membro{},
		&banco.Banco{},
		&categoria.Categoria{},
		&metodopagamento.MetodoPagamento{},
		&debito.Debito{},
	); err != nil {
		log.Fatal("Erro no AutoMigrate:", err)
	}

	// Repositórios
	usuarioRepo := usuario.NewRepository(conn)
	workspaceRepo := workspace.NewRepository(conn)
	bancoRepo := banco.NewRepository(conn)
	categoriaRepo := categoria.NewRepository(conn)
	metodoRepo := metodopagamento.NewRepository(conn)
	debitoRepo := debito.NewRepository(conn)

	// Handlers
	usuarioHandler := usuario.NewHandler(usuarioRepo)
	workspaceHandler := workspace.NewHandler(workspaceRepo)
	debitoHandler := debito.NewHandler(debitoRepo, workspaceRepo, bancoRepo, categoriaRepo, metodoRepo)
	debitoHandler.ReferenciaEstrita = os.Getenv("DEBITOS_REFERENCIA_ESTRITA") == "true"

	// Router
	r := mux.NewRouter()

	// Rota pública
	r.HandleFunc("/login", usuarioHandler.Login).Methods("POST")

	// Rotas autenticadas
	api := r.PathPrefix("/").Subrouter()
	api.Use(auth.MiddlewareAutenticacao)

	api.HandleFunc("/workspaces", workspaceHandler.Listar).Methods("GET")
	api.HandleFunc("/workspaces", workspaceHandler.Criar).Methods("POST")

	api.HandleFunc("/workspaces/{workspaceId}/debitos", debitoHandler.Criar).Methods("POST")
	api.HandleFunc("/workspaces/{workspaceId}/debitos", debitoHandler.Listar).Methods("GET")

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Inicia servidor
	fmt.Printf("Servidor rodando em http://localhost:%s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, c.Handler(r)))
}
