// Package docs holds the OpenAPI description served at /swagger/doc.json.
// It follows the layout swag emits; regenerate with
// swag init -g cmd/server/main.go -o docs after changing handler annotations.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
	"swagger": "2.0",
	"info": {
		"title": "{{.Title}}",
		"description": "{{escape .Description}}",
		"version": "{{.Version}}",
		"contact": {}
	},
	"host": "{{.Host}}",
	"basePath": "{{.BasePath}}",
	"schemes": {{ marshal .Schemes }},
	"paths": {
		"/health": {
			"get": {
				"tags": [
					"sistema"
				],
				"summary": "Saúde do banco e do Redis",
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/v1/auth/login": {
			"post": {
				"tags": [
					"auth"
				],
				"summary": "Login do operador",
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.LoginRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.LoginResponse"
						}
					},
					"401": {
						"description": "Erro",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"422": {
						"description": "Erro",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"429": {
						"description": "Erro",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					}
				}
			}
		},
		"/v1/auth/refresh": {
			"post": {
				"tags": [
					"auth"
				],
				"summary": "Renovar tokens",
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.RefreshRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.LoginResponse"
						}
					},
					"401": {
						"description": "Erro",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					}
				}
			}
		},
		"/v1/auth/logout": {
			"post": {
				"tags": [
					"auth"
				],
				"summary": "Encerrar a sessão",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"responses": {
					"204": {
						"description": "OK"
					}
				}
			}
		},
		"/v1/obras": {
			"get": {
				"tags": [
					"obras"
				],
				"summary": "Listar obras",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/dto.ObraResponse"
							}
						}
					}
				}
			},
			"post": {
				"tags": [
					"obras"
				],
				"summary": "Cadastrar obra",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.CriarObraRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.ObraResponse"
						}
					},
					"409": {
						"description": "Erro",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"422": {
						"description": "Erro",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					}
				}
			}
		},
		"/v1/obras/{nome}": {
			"get": {
				"tags": [
					"obras"
				],
				"summary": "Obter obra",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "nome",
						"in": "path",
						"required": true,
						"type": "string",
						"description": "Nome da obra"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.ObraResponse"
						}
					},
					"404": {
						"description": "Erro",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					}
				}
			},
			"delete": {
				"tags": [
					"obras"
				],
				"summary": "Excluir obra com etapas e custos (exige confirmação prévia)",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "nome",
						"in": "path",
						"required": true,
						"type": "string",
						"description": "Nome da obra"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.ExclusaoResponse"
						}
					},
					"404": {
						"description": "Erro",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"409": {
						"description": "Erro",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					}
				}
			}
		},
		"/v1/obras/{nome}/status": {
			"patch": {
				"tags": [
					"obras"
				],
				"summary": "Alterar status",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "nome",
						"in": "path",
						"required": true,
						"type": "string",
						"description": "Nome da obra"
					},
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.AtualizarStatusRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.ObraResponse"
						}
					},
					"404": {
						"description": "Erro",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"422": {
						"description": "Erro",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					}
				}
			}
		},
		"/v1/obras/{nome}/painel": {
			"get": {
				"tags": [
					"obras"
				],
				"summary": "Painel da obra",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "nome",
						"in": "path",
						"required": true,
						"type": "string",
						"description": "Nome da obra"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.PainelResponse"
						}
					},
					"404": {
						"description": "Erro",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					}
				}
			}
		},
		"/v1/obras/{nome}/exclusao": {
			"post": {
				"tags": [
					"obras"
				],
				"summary": "Pedir exclusão",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "nome",
						"in": "path",
						"required": true,
						"type": "string",
						"description": "Nome da obra"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.ConfirmacaoExclusaoResponse"
						}
					},
					"404": {
						"description": "Erro",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					}
				}
			},
			"delete": {
				"tags": [
					"obras"
				],
				"summary": "Cancelar pedido de exclusão",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "nome",
						"in": "path",
						"required": true,
						"type": "string",
						"description": "Nome da obra"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.ConfirmacaoExclusaoResponse"
						}
					}
				}
			}
		},
		"/v1/obras/{nome}/documento": {
			"put": {
				"tags": [
					"documentos"
				],
				"summary": "Anexar (ou substituir) o PDF do projeto",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "nome",
						"in": "path",
						"required": true,
						"type": "string",
						"description": "Nome da obra"
					},
					{
						"name": "arquivo",
						"in": "formData",
						"required": true,
						"type": "file"
					}
				],
				"consumes": [
					"multipart/form-data"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.DocumentoResponse"
						}
					},
					"404": {
						"description": "Erro",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"413": {
						"description": "Erro",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"415": {
						"description": "Erro",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					}
				}
			},
			"get": {
				"tags": [
					"documentos"
				],
				"summary": "Baixar o PDF do projeto",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "nome",
						"in": "path",
						"required": true,
						"type": "string",
						"description": "Nome da obra"
					}
				],
				"produces": [
					"application/pdf"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "file"
						}
					},
					"404": {
						"description": "Erro",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					}
				}
			}
		},
		"/v1/obras/{nome}/documento/leitura": {
			"post": {
				"tags": [
					"documentos"
				],
				"summary": "Extrair texto e itens de material",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "nome",
						"in": "path",
						"required": true,
						"type": "string",
						"description": "Nome da obra"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.LeituraDocumentoResponse"
						}
					},
					"404": {
						"description": "Erro",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"422": {
						"description": "Erro",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					}
				}
			}
		},
		"/v1/obras/{nome}/cronograma": {
			"get": {
				"tags": [
					"cronograma"
				],
				"summary": "Cronograma ordenado",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "nome",
						"in": "path",
						"required": true,
						"type": "string",
						"description": "Nome da obra"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.CronogramaResponse"
						}
					},
					"404": {
						"description": "Erro",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					}
				}
			}
		},
		"/v1/obras/{nome}/cronograma/gerar": {
			"post": {
				"tags": [
					"cronograma"
				],
				"summary": "Gerar cronograma automático",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "nome",
						"in": "path",
						"required": true,
						"type": "string",
						"description": "Nome da obra"
					},
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.GerarCronogramaRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.GerarCronogramaResponse"
						}
					},
					"404": {
						"description": "Erro",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"422": {
						"description": "Erro",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					}
				}
			}
		},
		"/v1/obras/{nome}/cronograma/etapas": {
			"post": {
				"tags": [
					"cronograma"
				],
				"summary": "Inserir etapa manual",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "nome",
						"in": "path",
						"required": true,
						"type": "string",
						"description": "Nome da obra"
					},
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.InserirEtapaRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.EtapaResponse"
						}
					},
					"404": {
						"description": "Erro",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"422": {
						"description": "Erro",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					}
				}
			}
		},
		"/v1/obras/{nome}/cronograma/grafico": {
			"get": {
				"tags": [
					"cronograma"
				],
				"summary": "Gráfico de Gantt (HTML)",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "nome",
						"in": "path",
						"required": true,
						"type": "string",
						"description": "Nome da obra"
					}
				],
				"produces": [
					"text/html"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"404": {
						"description": "Erro",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					}
				}
			}
		},
		"/v1/etapas/{id}/datas": {
			"put": {
				"tags": [
					"cronograma"
				],
				"summary": "Alterar datas da etapa",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"type": "string",
						"format": "uuid"
					},
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.AtualizarDatasRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.EtapaResponse"
						}
					},
					"400": {
						"description": "Erro",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"404": {
						"description": "Erro",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"422": {
						"description": "Erro",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					}
				}
			}
		},
		"/v1/etapas/{id}/progresso": {
			"patch": {
				"tags": [
					"cronograma"
				],
				"summary": "Alterar progresso da etapa",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"type": "string",
						"format": "uuid"
					},
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.AtualizarProgressoRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.EtapaResponse"
						}
					},
					"400": {
						"description": "Erro",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"404": {
						"description": "Erro",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"422": {
						"description": "Erro",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					}
				}
			}
		},
		"/v1/etapas/{id}": {
			"delete": {
				"tags": [
					"cronograma"
				],
				"summary": "Excluir etapa",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"type": "string",
						"format": "uuid"
					}
				],
				"responses": {
					"204": {
						"description": "OK"
					},
					"400": {
						"description": "Erro",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"404": {
						"description": "Erro",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					}
				}
			}
		},
		"/v1/obras/{nome}/custos": {
			"get": {
				"tags": [
					"custos"
				],
				"summary": "Custos (mais recentes primeiro) e total",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "nome",
						"in": "path",
						"required": true,
						"type": "string",
						"description": "Nome da obra"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.ListaCustosResponse"
						}
					},
					"404": {
						"description": "Erro",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					}
				}
			},
			"post": {
				"tags": [
					"custos"
				],
				"summary": "Lançar custo (o ledger é somente inclusão)",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "nome",
						"in": "path",
						"required": true,
						"type": "string",
						"description": "Nome da obra"
					},
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.RegistrarCustoRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.CustoResponse"
						}
					},
					"404": {
						"description": "Erro",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"422": {
						"description": "Erro",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					}
				}
			}
		},
		"/v1/obras/{nome}/relatorio": {
			"get": {
				"tags": [
					"relatorios"
				],
				"summary": "Relatório da obra em PDF",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "nome",
						"in": "path",
						"required": true,
						"type": "string",
						"description": "Nome da obra"
					}
				],
				"produces": [
					"application/pdf"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "file"
						}
					},
					"404": {
						"description": "Erro",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					}
				}
			}
		},
		"/v1/calculadora/concreto": {
			"post": {
				"tags": [
					"calculadora"
				],
				"summary": "Sacos de cimento para concreto",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.ConcretoRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.CalculoResponse"
						}
					},
					"422": {
						"description": "Erro",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					}
				}
			}
		},
		"/v1/calculadora/reboco": {
			"post": {
				"tags": [
					"calculadora"
				],
				"summary": "Sacos de cimento para reboco",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.RebocoRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.CalculoResponse"
						}
					},
					"422": {
						"description": "Erro",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					}
				}
			}
		}
	},
	"definitions": {
		"apierror.APIError": {
			"type": "object",
			"properties": {
				"detail": {
					"type": "string"
				},
				"fields": {
					"type": "object",
					"additionalProperties": {
						"type": "string"
					}
				}
			}
		},
		"dto.LoginRequest": {
			"type": "object",
			"properties": {
				"username": {
					"type": "string"
				},
				"password": {
					"type": "string"
				}
			},
			"required": [
				"username",
				"password"
			]
		},
		"dto.RefreshRequest": {
			"type": "object",
			"properties": {
				"refresh_token": {
					"type": "string"
				}
			},
			"required": [
				"refresh_token"
			]
		},
		"dto.LoginResponse": {
			"type": "object",
			"properties": {
				"access_token": {
					"type": "string"
				},
				"refresh_token": {
					"type": "string"
				},
				"token_type": {
					"type": "string"
				},
				"expires_in": {
					"type": "integer"
				},
				"usuario": {
					"type": "string"
				}
			}
		},
		"dto.CriarObraRequest": {
			"type": "object",
			"properties": {
				"nome": {
					"type": "string"
				},
				"area_m2": {
					"type": "number",
					"minimum": 0,
					"maximum": 100000
				},
				"data_inicio": {
					"type": "string",
					"example": "2024-01-01"
				}
			},
			"required": [
				"nome",
				"data_inicio"
			]
		},
		"dto.AtualizarStatusRequest": {
			"type": "object",
			"properties": {
				"status": {
					"type": "string",
					"enum": [
						"ATIVA",
						"PAUSADA",
						"CONCLUIDA"
					]
				}
			},
			"required": [
				"status"
			]
		},
		"dto.ObraResponse": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"nome": {
					"type": "string"
				},
				"status": {
					"type": "string"
				},
				"area_m2": {
					"type": "number"
				},
				"data_inicio": {
					"type": "string",
					"example": "2024-01-01"
				},
				"documento": {
					"type": "string"
				}
			}
		},
		"dto.ExclusaoResponse": {
			"type": "object",
			"properties": {
				"excluida": {
					"type": "boolean"
				}
			}
		},
		"dto.ConfirmacaoExclusaoResponse": {
			"type": "object",
			"properties": {
				"obra": {
					"type": "string"
				},
				"pendente": {
					"type": "boolean"
				}
			}
		},
		"dto.DocumentoResponse": {
			"type": "object",
			"properties": {
				"obra": {
					"type": "string"
				},
				"arquivo": {
					"type": "string"
				},
				"tamanho": {
					"type": "integer"
				}
			}
		},
		"dto.LeituraDocumentoResponse": {
			"type": "object",
			"properties": {
				"texto": {
					"type": "string"
				},
				"linhas": {
					"type": "array",
					"items": {
						"type": "string"
					}
				}
			}
		},
		"dto.GerarCronogramaRequest": {
			"type": "object",
			"properties": {
				"pedreiros": {
					"type": "integer",
					"minimum": 0,
					"maximum": 200
				},
				"ajudantes": {
					"type": "integer",
					"minimum": 0,
					"maximum": 200
				}
			}
		},
		"dto.InserirEtapaRequest": {
			"type": "object",
			"properties": {
				"nome": {
					"type": "string"
				},
				"data_inicio": {
					"type": "string",
					"example": "2024-01-01"
				},
				"data_fim": {
					"type": "string",
					"example": "2024-01-01"
				}
			},
			"required": [
				"nome",
				"data_inicio",
				"data_fim"
			]
		},
		"dto.AtualizarDatasRequest": {
			"type": "object",
			"properties": {
				"data_inicio": {
					"type": "string",
					"example": "2024-01-01"
				},
				"data_fim": {
					"type": "string",
					"example": "2024-01-01"
				}
			},
			"required": [
				"data_inicio",
				"data_fim"
			]
		},
		"dto.AtualizarProgressoRequest": {
			"type": "object",
			"properties": {
				"porcentagem": {
					"type": "integer",
					"minimum": 0,
					"maximum": 100
				}
			},
			"required": [
				"porcentagem"
			]
		},
		"dto.EtapaResponse": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"nome": {
					"type": "string"
				},
				"dias_estimados": {
					"type": "integer"
				},
				"data_inicio": {
					"type": "string",
					"example": "2024-01-01"
				},
				"data_fim": {
					"type": "string",
					"example": "2024-01-01"
				},
				"porcentagem": {
					"type": "integer"
				},
				"faixa": {
					"type": "string"
				},
				"atrasada": {
					"type": "boolean"
				}
			}
		},
		"dto.CronogramaResponse": {
			"type": "object",
			"properties": {
				"obra": {
					"type": "string"
				},
				"etapas": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dto.EtapaResponse"
					}
				},
				"progresso": {
					"type": "number"
				},
				"atrasadas": {
					"type": "integer"
				},
				"status": {
					"type": "string"
				}
			}
		},
		"dto.GerarCronogramaResponse": {
			"type": "object",
			"properties": {
				"gerado": {
					"type": "boolean"
				},
				"cronograma": {
					"$ref": "#/definitions/dto.CronogramaResponse"
				}
			}
		},
		"dto.RegistrarCustoRequest": {
			"type": "object",
			"properties": {
				"data": {
					"type": "string",
					"example": "2024-01-01"
				},
				"item": {
					"type": "string"
				},
				"quantidade": {
					"type": "string",
					"example": "10.50"
				},
				"unidade": {
					"type": "string",
					"enum": [
						"unid",
						"kg",
						"m²"
					]
				},
				"valor_unitario": {
					"type": "string",
					"example": "10.50"
				},
				"classe": {
					"type": "string",
					"enum": [
						"Materiais",
						"Mão de Obra",
						"Equipamentos"
					]
				},
				"etapa": {
					"type": "string"
				}
			},
			"required": [
				"data",
				"item",
				"unidade",
				"classe"
			]
		},
		"dto.CustoResponse": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"data": {
					"type": "string",
					"example": "2024-01-01"
				},
				"item": {
					"type": "string"
				},
				"quantidade": {
					"type": "string",
					"example": "10.50"
				},
				"unidade": {
					"type": "string"
				},
				"valor_unitario": {
					"type": "string",
					"example": "10.50"
				},
				"total": {
					"type": "string",
					"example": "10.50"
				},
				"classe": {
					"type": "string"
				},
				"etapa": {
					"type": "string"
				}
			}
		},
		"dto.FormularioCustoResponse": {
			"type": "object",
			"properties": {
				"classe": {
					"type": "string"
				},
				"etapa": {
					"type": "string"
				},
				"unidade": {
					"type": "string"
				}
			}
		},
		"dto.ListaCustosResponse": {
			"type": "object",
			"properties": {
				"obra": {
					"type": "string"
				},
				"custos": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dto.CustoResponse"
					}
				},
				"total": {
					"type": "string",
					"example": "10.50"
				},
				"formulario": {
					"$ref": "#/definitions/dto.FormularioCustoResponse"
				}
			}
		},
		"dto.PainelResponse": {
			"type": "object",
			"properties": {
				"obra": {
					"$ref": "#/definitions/dto.ObraResponse"
				},
				"progresso": {
					"type": "number"
				},
				"atrasadas": {
					"type": "integer"
				},
				"status": {
					"type": "string"
				},
				"etapas_por_faixa": {
					"type": "object",
					"additionalProperties": {
						"type": "integer"
					}
				},
				"total_etapas": {
					"type": "integer"
				},
				"total_gasto": {
					"type": "string",
					"example": "10.50"
				},
				"qtd_custos": {
					"type": "integer"
				},
				"itens_extraidos": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"exclusao_pendente": {
					"type": "boolean"
				}
			}
		},
		"dto.ConcretoRequest": {
			"type": "object",
			"properties": {
				"traco": {
					"type": "string",
					"enum": [
						"1:2:3",
						"1:3:6"
					]
				},
				"volume_m3": {
					"type": "string",
					"example": "10.50"
				}
			},
			"required": [
				"traco",
				"volume_m3"
			]
		},
		"dto.RebocoRequest": {
			"type": "object",
			"properties": {
				"area_m2": {
					"type": "string",
					"example": "10.50"
				},
				"espessura_cm": {
					"type": "string",
					"example": "10.50"
				}
			},
			"required": [
				"area_m2",
				"espessura_cm"
			]
		},
		"dto.CalculoResponse": {
			"type": "object",
			"properties": {
				"sacos": {
					"type": "string",
					"example": "10.50"
				}
			}
		}
	},
	"securityDefinitions": {
		"BearerAuth": {
			"type": "apiKey",
			"in": "header",
			"name": "Authorization",
			"description": "Bearer <access_token>"
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:		  "1.0",
	Host:			 "",
	BasePath:		 "/",
	Schemes:		  []string{},
	Title:			"Sistema de Obras API",
	Description:	  "Painel de obras: cronograma, custos e documento do projeto.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:		"{{",
	RightDelim:	   "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
