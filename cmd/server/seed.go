package main

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/pedrodiniz00/sistema-obras/internal/dto"
	"github.com/pedrodiniz00/sistema-obras/internal/model"
	"github.com/pedrodiniz00/sistema-obras/internal/repository"
	"github.com/pedrodiniz00/sistema-obras/internal/service"
	"github.com/pedrodiniz00/sistema-obras/internal/sessao"
)

var seedOpts struct {
	nome      string
	area      float64
	pedreiros int
	ajudantes int
}

// seedCmd creates a demo obra with a generated schedule. Running it twice
// regenerates the schedule of the existing obra.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Cria uma obra de demonstração com cronograma gerado",
	RunE:  seed,
}

func init() {
	f := seedCmd.Flags()
	f.StringVar(&seedOpts.nome, "nome", "Residência Modelo", "nome da obra")
	f.Float64Var(&seedOpts.area, "area", 120, "área construída em m²")
	f.IntVar(&seedOpts.pedreiros, "pedreiros", 2, "pedreiros na equipe")
	f.IntVar(&seedOpts.ajudantes, "ajudantes", 2, "ajudantes na equipe")
}

func seed(cmd *cobra.Command, args []string) error {
	_, db, cleanup, err := bootstrap()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx := cmd.Context()
	obraRepo := repository.NewObraRepository(db)
	obras := service.NewObraService(obraRepo, sessao.NewMemoryStore(0))
	cronogramas := service.NewCronogramaService(repository.NewEtapaRepository(db), obraRepo, nil)

	_, err = obras.Criar(ctx, dto.CriarObraRequest{
		Nome:       seedOpts.nome,
		AreaM2:     seedOpts.area,
		DataInicio: model.Today().String(),
	})
	switch {
	case errors.Is(err, service.ErrObraDuplicada):
		log.Info().Str("obra", seedOpts.nome).Msg("obra já existe, regenerando cronograma")
	case err != nil:
		return fmt.Errorf("criar obra: %w", err)
	}

	resp, err := cronogramas.Gerar(ctx, seedOpts.nome, dto.GerarCronogramaRequest{
		Pedreiros: seedOpts.pedreiros,
		Ajudantes: seedOpts.ajudantes,
	})
	if err != nil {
		return fmt.Errorf("gerar cronograma: %w", err)
	}
	log.Info().Str("obra", seedOpts.nome).Bool("gerado", resp.Gerado).
		Int("etapas", len(resp.Cronograma.Etapas)).Msg("seed concluído")
	return nil
}
