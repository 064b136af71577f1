package retailapi

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/vsinha/stockcheck/pkg/domain/entities"
)

const productXML = `<?xml version="1.0" encoding="UTF-8"?>
<ir:ikea-rest xmlns:ir="ikea-rest">
  <products>
    <product>
      <items>
        <item>
          <name>BILLY</name>
          <facts>Bookcase</facts>
          <prices>
            <normal>
              <priceNormal unformatted="19.99">$19.99</priceNormal>
            </normal>
          </prices>
          <attributesItems>
            <attributeItem><name>Color</name><value>white</value></attributeItem>
            <attributeItem><name>Size</name><value>31 1/2x11x79 1/2 "</value></attributeItem>
          </attributesItems>
        </item>
      </items>
    </product>
  </products>
</ir:ikea-rest>`

const productErrorXML = `<?xml version="1.0" encoding="UTF-8"?>
<ir:ikea-rest xmlns:ir="ikea-rest">
  <products>
    <error code="1100">
      <message>Product not found</message>
    </error>
  </products>
</ir:ikea-rest>`

const singlePartXML = `<?xml version="1.0" encoding="UTF-8"?>
<ir:ikea-rest xmlns:ir="ikea-rest">
  <availability>
    <localStore buCode="211">
      <stock>
        <availableStock>0</availableStock>
        <inStockProbabilityCode>LOW</inStockProbabilityCode>
        <isMultiProduct>false</isMultiProduct>
        <restockDate>2024-03-01</restockDate>
        <findItList>
          <findIt><partNumber>00112233</partNumber><quantity>1</quantity><type>CONTACT_STAFF</type></findIt>
        </findItList>
        <forecasts>
          <forcast><availableStock>0</availableStock><validDate>2024-02-20</validDate><inStockProbabilityCode>LOW</inStockProbabilityCode></forcast>
          <forcast><availableStock>12</availableStock><validDate>2024-03-01</validDate><inStockProbabilityCode>HIGH</inStockProbabilityCode></forcast>
        </forecasts>
      </stock>
    </localStore>
    <localStore buCode="215">
      <stock>
        <availableStock>5</availableStock>
        <inStockProbabilityCode>HIGH</inStockProbabilityCode>
        <isMultiProduct>false</isMultiProduct>
        <findItList>
          <findIt><partNumber>00112233</partNumber><quantity>1</quantity><type>BOX_SHELF</type><box>A</box><shelf>12</shelf></findIt>
        </findItList>
        <forecasts/>
      </stock>
    </localStore>
  </availability>
</ir:ikea-rest>`

const multiPartXML = `<?xml version="1.0" encoding="UTF-8"?>
<ir:ikea-rest xmlns:ir="ikea-rest">
  <availability>
    <localStore buCode="215">
      <stock>
        <availableStock>3</availableStock>
        <inStockProbabilityCode>MEDIUM</inStockProbabilityCode>
        <isMultiProduct>true</isMultiProduct>
        <findItList>
          <findIt><partNumber>101.010.10</partNumber><quantity>1</quantity><type>BOX_SHELF</type><box>7</box><shelf>04</shelf></findIt>
          <findIt><partNumber>202.020.20</partNumber><quantity>2</quantity><type>SPECIALITY_SHOP</type><specialityShop>Kitchen</specialityShop></findIt>
          <findIt><partNumber>303.030.30</partNumber><quantity>4</quantity><type>FLOOR</type></findIt>
        </findItList>
      </stock>
    </localStore>
  </availability>
</ir:ikea-rest>`

// stubServer serves canned XML bodies by request path and counts hits
type stubServer struct {
	*httptest.Server
	mu     sync.Mutex
	hits   map[string]int
	bodies map[string]string
	status map[string]int
}

func newStubServer(t *testing.T) *stubServer {
	t.Helper()
	s := &stubServer{
		hits:   make(map[string]int),
		bodies: make(map[string]string),
		status: make(map[string]int),
	}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.hits[r.URL.Path]++
		body, ok := s.bodies[r.URL.Path]
		status := s.status[r.URL.Path]
		s.mu.Unlock()

		if !ok {
			http.NotFound(w, r)
			return
		}
		if status != 0 {
			w.WriteHeader(status)
		}
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(s.Close)
	return s
}

func (s *stubServer) product(code, body string) {
	s.bodies["/us/en/catalog/products/"+code] = body
}

func (s *stubServer) availability(code, body string) {
	s.bodies["/us/en/iows/catalog/availability/"+code] = body
}

func (s *stubServer) hitsFor(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits[path]
}

func newTestClient(t *testing.T, s *stubServer) *Client {
	t.Helper()
	client, err := NewClient(Options{BaseURL: s.URL, Country: "us", Language: "en"}, zap.NewNop())
	require.NoError(t, err)
	return client
}

var testStores = []entities.Store{
	{ID: 215, Name: "Seattle", CountryCode: "us"},
	{ID: 211, Name: "Portland", CountryCode: "us"},
	{ID: 399, Name: "Tukwila", CountryCode: "us"},
}
