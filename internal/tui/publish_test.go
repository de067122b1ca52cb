package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vkarev/arpub/internal/mock"
	"github.com/vkarev/arpub/internal/service"
	"github.com/vkarev/arpub/models"
)

type stubExporter struct {
	doc string
	err error
}

func (s stubExporter) Export(context.Context) (string, error) { return s.doc, s.err }

type stubPreviewer struct {
	doc string
}

func (s *stubPreviewer) SetDocument(html string) { s.doc = html }
func (s *stubPreviewer) URL() string             { return "http://127.0.0.1:8666/" }

func TestPublishModel_QuoteCommandLoadsAddressBalanceAndEstimate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	balanceSvc := mock.NewMockBalanceService(ctrl)
	estimateSvc := mock.NewMockEstimateService(ctrl)
	services := &service.ClientServices{BalanceService: balanceSvc, EstimateService: estimateSvc}

	quote := models.PriceQuote{Winston: "1500000000000", AR: "1.5", USD: 9.15}
	balanceSvc.EXPECT().Address(gomock.Any()).Return("wallet-address", nil)
	balanceSvc.EXPECT().Balance(gomock.Any()).Return("2.5", nil)
	estimateSvc.EXPECT().Estimate(gomock.Any(), []byte("<html>doc</html>")).Return(quote, nil)

	m := newPublishModel(context.Background(), services, stubExporter{}, &stubPreviewer{})

	msg := m.cmdQuote("<html>doc</html>")()
	loaded, ok := msg.(quoteLoadedMsg)
	require.True(t, ok)
	require.NoError(t, loaded.err)
	assert.Equal(t, "wallet-address", loaded.address)
	assert.Equal(t, "2.5", loaded.balance)
	assert.Equal(t, quote, loaded.quote)

	// Модалка показывает адрес, баланс и стоимость перед подтверждением.
	updated, _ := m.Update(loaded)
	view := updated.View()
	assert.Contains(t, view, "Wallet: wallet-address")
	assert.Contains(t, view, "Wallet balance: 2.5 AR")
	assert.Contains(t, view, quote.String())
	assert.Contains(t, view, "[Upload]")
}

func TestPublishModel_NoActiveNoteShowsNoticeWithoutModal(t *testing.T) {
	m := newPublishModel(context.Background(), &service.ClientServices{}, stubExporter{}, &stubPreviewer{})

	updated, _ := m.Update(exportDoneMsg{noActive: true})
	view := updated.View()

	assert.Contains(t, view, "No active note to export")
	assert.NotContains(t, view, "[Upload]")
}

func TestPublishModel_FailedUploadReenablesButton(t *testing.T) {
	m := newPublishModel(context.Background(), &service.ClientServices{}, stubExporter{}, &stubPreviewer{})

	updated, _ := m.Update(quoteLoadedMsg{address: "addr", balance: "1", quote: models.PriceQuote{AR: "0.1"}})
	updated, _ = updated.Update(publishDoneMsg{err: errors.New("upload rejected by gateway: status 400")})

	view := updated.View()
	assert.Contains(t, view, "Notice: upload rejected by gateway: status 400")
	assert.Contains(t, view, "[Upload]")
	assert.NotContains(t, view, "[Uploading...]")
}

func TestPublishModel_DoneEscDeliversNoticeToMenu(t *testing.T) {
	m := newPublishModel(context.Background(), &service.ClientServices{}, stubExporter{}, &stubPreviewer{})

	updated, _ := m.Update(quoteLoadedMsg{address: "addr", balance: "1", quote: models.PriceQuote{AR: "0.1"}})
	updated, _ = updated.Update(publishDoneMsg{result: models.PublishResult{
		TxID: "tx-id-abc",
		URL:  "https://arweave.net/tx-id-abc",
	}})
	assert.Contains(t, updated.View(), "https://arweave.net/tx-id-abc")

	_, cmd := updated.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)

	nav, ok := cmd().(NavigateTo)
	require.True(t, ok)
	assert.Equal(t, "menu", nav.Page)

	notice, ok := nav.Payload.(PublishSuccessNotice)
	require.True(t, ok)
	assert.Equal(t, "https://arweave.net/tx-id-abc", notice.URL)

	menu := NewMenuModel()
	updatedMenu, _ := menu.Update(notice)
	assert.Contains(t, updatedMenu.View(), "Published: https://arweave.net/tx-id-abc")
}
