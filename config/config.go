package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Configuration contém as informações estáticas necessárias para rodar a aplicação
type Configuration struct {
	Address               string `env:"ADDRESS" envDefault:":8080"`                // Endereço do servidor
	JwtSecret             string `env:"JWT_SECRET,required"`                       // Segredo de assinatura do JWT
	MongoDB_ConnectionURI string `env:"MONGODB_CONNECTION_URI,required"`           // URI de conexão com o MongoDB
	MongoDB_DBName        string `env:"MONGODB_DBNAME" envDefault:"firetvgestor"`  // Nome do banco de dados
	CORS_Origins          string `env:"CORS_ORIGINS" envDefault:"*"`               // Origins permitidos (separados por vírgula, * = todos)
	CORS_AllowCredentials bool   `env:"CORS_ALLOW_CREDENTIALS" envDefault:"false"` // Permite envio de credentials
	RateLimit_Max         int    `env:"RATE_LIMIT_MAX" envDefault:"100"`           // Máximo de requests por janela (0 = desabilitado)
	RateLimit_Window      int    `env:"RATE_LIMIT_WINDOW" envDefault:"60"`         // Tamanho da janela (segundos)
	RateLimit_Enabled     bool   `env:"RATE_LIMIT_ENABLED" envDefault:"true"`      // Liga/desliga rate limiting

	// Conta bootstrap (CEO). Única conta isenta de verificação de e-mail e de expiração de painel.
	CEOEmail   string `env:"CEO_EMAIL" envDefault:"admin@firetv.com"` // E-mail reservado da conta CEO
	CEOName    string `env:"CEO_NAME" envDefault:"Administrador"`     // Nome exibido da conta CEO
	CEOInitPwd string `env:"CEO_INIT_PASSWORD"`                       // Senha inicial do CEO (apenas primeiro boot)

	// Identidade do produto
	CompanyName string `env:"COMPANY_NAME" envDefault:"Fire Gestor"` // Nome usado no placeholder {empresa} quando o revendedor não configura o seu

	// SMTP para e-mails de verificação e redefinição de senha
	SMTPHost     string `env:"SMTP_HOST"`
	SMTPPort     int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUser     string `env:"SMTP_USER"`
	SMTPPassword string `env:"SMTP_PASSWORD"`
	SMTPFrom     string `env:"SMTP_FROM" envDefault:"no-reply@firetv.com"`

	// URL do frontend (links de verificação/redefinição)
	FrontendURL string `env:"FRONTEND_URL" envDefault:"http://localhost:3000"`

	// Ponte com o relay do WhatsApp (processo externo que mantém a sessão do bot)
	BotBridgeURL   string `env:"BOT_BRIDGE_URL"`                  // Endpoint HTTP do relay; vazio = dispatcher desligado
	BotBridgeToken string `env:"BOT_BRIDGE_TOKEN"`                // Token de autenticação da ponte
	BotPollSeconds int    `env:"BOT_POLL_SECONDS" envDefault:"5"` // Intervalo de varredura da fila de mensagens

	// IA de apoio à escrita de mensagens (Gemini)
	GeminiAPIKey string `env:"GEMINI_API_KEY"`                                                    // Vazio = recurso desabilitado
	GeminiModel  string `env:"GEMINI_MODEL" envDefault:"gemini-1.5-flash"`                        // Modelo usado no endpoint generateContent
	GeminiURL    string `env:"GEMINI_URL" envDefault:"https://generativelanguage.googleapis.com"` // Base URL da API

	// TLS/HTTPS
	EnableTLS   bool   `env:"ENABLE_TLS" envDefault:"false"`
	TLSCertFile string `env:"TLS_CERT_FILE"`
	TLSKeyFile  string `env:"TLS_KEY_FILE"`
}

// getEnvPath retorna o caminho do arquivo env conforme o ambiente (GO_ENV)
func getEnvPath() string {
	goenv := os.Getenv("GO_ENV")
	if goenv == "" {
		goenv = "development"
	}

	currentDir, err := os.Getwd()
	if err != nil {
		// fmt.Printf porque o logger pode ainda não estar inicializado aqui
		fmt.Printf("Não foi possível obter o diretório atual: %v\n", err)
		return ""
	}

	// Procura o diretório config/env subindo a árvore a partir do CWD
	for {
		envDir := filepath.Join(currentDir, "config", "env")
		if _, err := os.Stat(envDir); err == nil {
			return filepath.Join(envDir, fmt.Sprintf("%s.env", goenv))
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return ""
		}
		currentDir = parentDir
	}
}

// NewConfig carrega a configuração a partir do arquivo env do ambiente atual.
// Variáveis já presentes no ambiente têm precedência sobre o arquivo.
func NewConfig() *Configuration {
	envPath := getEnvPath()
	if envPath != "" {
		if err := godotenv.Load(envPath); err != nil {
			fmt.Printf("Não foi possível carregar o arquivo env em %s: %v\n", envPath, err)
		}
	}

	cfg := Configuration{}
	if err := env.Parse(&cfg); err != nil {
		fmt.Printf("Erro ao fazer parse da configuração: %+v\n", err)
		return nil
	}

	return &cfg
}
