package infra

// pdf.go — quote-comparison report ("mapa de cotações") generated with
// go-pdf/fpdf. One section per item:
//   - item header with quantity and reference prices
//   - one row per cotação: supplier, unit/total price, minimum bid,
//     profit margin and ideal bid
// Returns the rendered bytes; the caller decides where they are stored.

import (
	"bytes"
	"fmt"

	"github.com/jbenteu/lance-pro-control/internal/model"

	"github.com/go-pdf/fpdf"
)

// GerarMapaCotacoes renders the quote-comparison PDF for a licitação.
// fornecedores resolves supplier ids to display names; missing entries
// render as a dash.
func GerarMapaCotacoes(l *model.Licitacao, fornecedores map[string]string) ([]byte, error) {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	// Core fonts are CP1252; accented text must go through the translator or
	// it renders as mojibake.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 20

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(contentW, 8, tr("Mapa de Cotações"), "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW, 6, tr(fmt.Sprintf("Aviso %s — %s", l.NumeroAviso, l.Orgao.Nome)), "", 1, "C", false, 0, "")
	pdf.CellFormat(contentW, 6, tr(fmt.Sprintf("Modalidade: %s    Status: %s", l.Modalidade, l.Status)), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	colFornecedor := contentW * 0.24
	colValor := contentW * 0.125
	colMarca := contentW * 0.13

	for idx := range l.Itens {
		item := &l.Itens[idx]

		// ── Item header ──────────────────────────────────────────────────────
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(contentW, 6, tr(fmt.Sprintf("Item %d — %s", idx+1, item.Objeto)), "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 8)
		pdf.CellFormat(contentW, 5, tr(fmt.Sprintf(
			"Quantidade: %d    Ref. unitário: R$ %s    Ref. total: R$ %s",
			item.Quantidade,
			item.ValorReferenciaUnitario.StringFixed(2),
			item.ValorReferenciaTotal.StringFixed(2),
		)), "", 1, "L", false, 0, "")

		if len(item.Cotacoes) == 0 {
			pdf.SetFont("Helvetica", "I", 8)
			pdf.CellFormat(contentW, 5, tr("Sem cotações registradas."), "", 1, "L", false, 0, "")
			pdf.Ln(3)
			continue
		}

		// ── Cotação table ────────────────────────────────────────────────────
		pdf.SetFont("Helvetica", "B", 8)
		pdf.CellFormat(colFornecedor, 5, "Fornecedor", "B", 0, "L", false, 0, "")
		pdf.CellFormat(colValor, 5, tr("Unitário"), "B", 0, "R", false, 0, "")
		pdf.CellFormat(colValor, 5, "Total", "B", 0, "R", false, 0, "")
		pdf.CellFormat(colValor, 5, tr("Lance mín."), "B", 0, "R", false, 0, "")
		pdf.CellFormat(colValor, 5, "Margem %", "B", 0, "R", false, 0, "")
		pdf.CellFormat(colValor, 5, "Lance ideal", "B", 0, "R", false, 0, "")
		pdf.CellFormat(colMarca, 5, "Marca/Modelo", "B", 1, "L", false, 0, "")

		pdf.SetFont("Helvetica", "", 8)
		for _, c := range item.Cotacoes {
			nome := "—"
			if c.FornecedorID != nil {
				if n, ok := fornecedores[c.FornecedorID.String()]; ok {
					nome = n
				}
			}
			if runes := []rune(nome); len(runes) > 30 {
				nome = string(runes[:29]) + "…"
			}
			marcaModelo := ""
			if c.Marca != nil {
				marcaModelo = *c.Marca
			}
			if c.Modelo != nil {
				if marcaModelo != "" {
					marcaModelo += " / "
				}
				marcaModelo += *c.Modelo
			}

			pdf.CellFormat(colFornecedor, 5, tr(nome), "", 0, "L", false, 0, "")
			pdf.CellFormat(colValor, 5, "R$ "+c.ValorUnitario.StringFixed(2), "", 0, "R", false, 0, "")
			pdf.CellFormat(colValor, 5, "R$ "+c.ValorTotal.StringFixed(2), "", 0, "R", false, 0, "")
			pdf.CellFormat(colValor, 5, "R$ "+c.LanceMinimo.StringFixed(2), "", 0, "R", false, 0, "")
			pdf.CellFormat(colValor, 5, c.PorcentagemLucro.StringFixed(2)+"%", "", 0, "R", false, 0, "")
			pdf.CellFormat(colValor, 5, "R$ "+c.LanceIdeal.StringFixed(2), "", 0, "R", false, 0, "")
			pdf.CellFormat(colMarca, 5, tr(marcaModelo), "", 1, "L", false, 0, "")
		}
		pdf.Ln(4)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: render mapa de cotações: %w", err)
	}
	return buf.Bytes(), nil
}
