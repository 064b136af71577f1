package retailapi

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/vsinha/stockcheck/pkg/domain/entities"
	"github.com/vsinha/stockcheck/pkg/domain/repositories"
)

type catalogResponse struct {
	Items []catalogItem      `xml:"products>product>items>item"`
	Error *catalogErrorEntry `xml:"products>error"`
}

type catalogItem struct {
	Name        string `xml:"name"`
	Facts       string `xml:"facts"`
	PriceNormal *struct {
		Unformatted string `xml:"unformatted,attr"`
	} `xml:"prices>normal>priceNormal"`
	Attributes []struct {
		Name  string `xml:"name"`
		Value string `xml:"value"`
	} `xml:"attributesItems>attributeItem"`
}

type catalogErrorEntry struct {
	Code    string `xml:"code,attr"`
	Message string `xml:"message"`
}

// CatalogClient reads product descriptions and prices
type CatalogClient struct {
	client *Client
}

// NewCatalogClient creates a catalog client
func NewCatalogClient(client *Client) *CatalogClient {
	return &CatalogClient{client: client}
}

// Verify interface compliance
var _ repositories.ProductCatalog = (*CatalogClient)(nil)

// GetProductInfo fetches one article. Transport and decode failures, upstream
// error payloads and responses missing price or attributes are all returned
// as *CatalogError.
func (c *CatalogClient) GetProductInfo(ctx context.Context, itemCode entities.ItemCode) (*entities.ProductInfo, error) {
	var resp catalogResponse
	var product *entities.ProductInfo
	status, err := c.client.getXML(ctx, c.client.productURL(string(itemCode)), &resp)
	if err != nil {
		err = &CatalogError{ItemCode: itemCode, Message: err.Error(), Err: err}
	} else {
		product, err = parseProduct(itemCode, &resp)
	}
	if err != nil {
		c.client.logger.Error("catalog lookup failed",
			zap.String("item", string(itemCode)),
			zap.Int("status", status),
			zap.Error(err))
		return nil, err
	}

	c.client.logger.Debug("catalog lookup",
		zap.String("item", string(itemCode)),
		zap.String("price", product.UnitPrice.String()))
	return product, nil
}

func parseProduct(itemCode entities.ItemCode, resp *catalogResponse) (*entities.ProductInfo, error) {
	if resp.Error != nil {
		return nil, &CatalogError{
			ItemCode: itemCode,
			Code:     resp.Error.Code,
			Message:  strings.TrimSpace(resp.Error.Message),
		}
	}

	if len(resp.Items) == 0 {
		return nil, &CatalogError{ItemCode: itemCode, Message: "response has no product item"}
	}
	item := resp.Items[0]

	if item.PriceNormal == nil || item.PriceNormal.Unformatted == "" {
		return nil, &CatalogError{ItemCode: itemCode, Message: "response has no normal price"}
	}
	price, err := decimal.NewFromString(strings.TrimSpace(item.PriceNormal.Unformatted))
	if err != nil {
		return nil, &CatalogError{ItemCode: itemCode, Message: "unparseable price " + item.PriceNormal.Unformatted}
	}

	if len(item.Attributes) < 2 {
		return nil, &CatalogError{ItemCode: itemCode, Message: "response is missing color or size attributes"}
	}

	product, err := entities.NewProductInfo(
		itemCode,
		price,
		item.Attributes[0].Value,
		item.Name+" "+item.Facts,
		item.Attributes[1].Value,
	)
	if err != nil {
		return nil, &CatalogError{ItemCode: itemCode, Message: err.Error()}
	}
	return product, nil
}
