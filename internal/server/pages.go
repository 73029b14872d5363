package server

// Minimal browser pages driving the API. The login form posts to
// /api/auth/login; the mailer form parses nothing client-side, it uploads the
// CSV as-is and polls /api/mail/progress while a campaign runs.

const loginHTML = `<!DOCTYPE html>
<html>
<head><title>Magnus Mail - Login</title></head>
<body>
  <h1>Magnus Mail</h1>
  <form id="login">
    <input id="userId" placeholder="User ID" required>
    <input id="password" type="password" placeholder="Password" required>
    <button type="submit">Login</button>
    <p id="error"></p>
  </form>
  <script>
    document.getElementById("login").addEventListener("submit", async (e) => {
      e.preventDefault();
      const res = await fetch("/api/auth/login", {
        method: "POST",
        headers: { "Content-Type": "application/json" },
        body: JSON.stringify({
          userId: document.getElementById("userId").value,
          password: document.getElementById("password").value,
        }),
      });
      const data = await res.json();
      if (data.success) {
        window.location = "/";
      } else {
        document.getElementById("error").textContent = data.message || "Invalid credentials";
      }
    });
  </script>
</body>
</html>`

const indexHTML = `<!DOCTYPE html>
<html>
<head><title>Magnus Mail</title></head>
<body>
  <h1>Magnus Mail</h1>
  <form id="campaign">
    <input id="subject" placeholder="Subject" required>
    <textarea id="body" placeholder="Body (use ${1}, ${2}, ... for CSV columns)" required></textarea>
    <input id="file" type="file" accept=".csv" required>
    <button type="submit">Send</button>
    <progress id="progress" value="0" max="100"></progress>
    <p id="status"></p>
  </form>
  <script>
    const form = document.getElementById("campaign");
    form.addEventListener("submit", async (e) => {
      e.preventDefault();
      if (!confirm("Send this campaign?")) return;
      const data = new FormData();
      data.append("subject", document.getElementById("subject").value);
      data.append("body", document.getElementById("body").value);
      data.append("file", document.getElementById("file").files[0]);
      const poll = setInterval(async () => {
        const res = await fetch("/api/mail/progress");
        const p = await res.json();
        document.getElementById("progress").value = p.progress;
      }, 1000);
      const res = await fetch("/api/mail/campaign", { method: "POST", body: data });
      clearInterval(poll);
      const result = await res.json();
      document.getElementById("progress").value = result.success ? 100 : 0;
      document.getElementById("status").textContent = result.success
        ? "Sent " + result.report.sent + " of " + result.report.total
        : (result.message || "Send failed");
    });
  </script>
</body>
</html>`
